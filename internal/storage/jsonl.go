package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"racepool/internal/model"
)

// JsonlStorage appends engine outcomes to JSONL files, one file per record
// kind. An empty path disables that sink.
type JsonlStorage struct {
	settlementsPath string
	poolsPath       string
	rejectsPath     string
	mu              sync.Mutex
}

func NewJsonlStorage(settlementsPath, poolsPath, rejectsPath string) *JsonlStorage {
	return &JsonlStorage{
		settlementsPath: settlementsPath,
		poolsPath:       poolsPath,
		rejectsPath:     rejectsPath,
	}
}

// PutSettlementBatch appends settlement records as JSON lines.
func (s *JsonlStorage) PutSettlementBatch(_ context.Context, settlements []model.Settlement) error {
	if len(settlements) == 0 || s.settlementsPath == "" {
		return nil
	}
	lines := make([]interface{}, len(settlements))
	for i, record := range settlements {
		lines[i] = record
	}
	return s.appendLines(s.settlementsPath, lines)
}

// PutPoolBatch appends pool snapshots as JSON lines.
func (s *JsonlStorage) PutPoolBatch(_ context.Context, pools []model.Pool) error {
	if len(pools) == 0 || s.poolsPath == "" {
		return nil
	}
	lines := make([]interface{}, len(pools))
	for i, record := range pools {
		lines[i] = record
	}
	return s.appendLines(s.poolsPath, lines)
}

// PutRejectBatch appends rejected operations as JSON lines.
func (s *JsonlStorage) PutRejectBatch(_ context.Context, rejects []model.RejectedOp) error {
	if len(rejects) == 0 || s.rejectsPath == "" {
		return nil
	}
	lines := make([]interface{}, len(rejects))
	for i, record := range rejects {
		lines[i] = record
	}
	return s.appendLines(s.rejectsPath, lines)
}

func (s *JsonlStorage) appendLines(path string, records []interface{}) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, record := range records {
		line, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		if _, err := writer.Write(line); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}
