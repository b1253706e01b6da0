package recorder

import (
	"context"
	"os"
	"sync"

	"github.com/goccy/go-json"
)

// JSON 文件记录器，每条记录一行
type JSONFileRecorder struct {
	mu   sync.Mutex
	file *os.File
}

func NewJSONFileRecorder(path string) (*JSONFileRecorder, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &JSONFileRecorder{file: file}, nil
}

func (r *JSONFileRecorder) Record(_ context.Context, e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	r.mu.Lock()
	defer r.mu.Unlock()
	_, err = r.file.Write(data)
	return err
}

func (r *JSONFileRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.file.Close()
}
