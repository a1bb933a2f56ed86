package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cleaning-marketplace/internal/domain"
	"github.com/cleaning-marketplace/internal/domain/repository"
)

// StreamRepository - in-memory замена Redis Streams: один лог на стрим,
// независимый курсор на consumer group, подтверждения учитываются
type StreamRepository struct {
	mu      sync.Mutex
	streams map[string][]domain.StreamMessage
	cursors map[string]int
	acked   map[string]bool
	seq     int
}

func NewStreamRepository() *StreamRepository {
	return &StreamRepository{
		streams: make(map[string][]domain.StreamMessage),
		cursors: make(map[string]int),
		acked:   make(map[string]bool),
	}
}

var _ repository.StreamRepository = (*StreamRepository)(nil)

func (r *StreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.streams[stream] = append(r.streams[stream], domain.StreamMessage{
		ID:   fmt.Sprintf("%d-0", r.seq),
		Data: string(payload),
	})
	return nil
}

func (r *StreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := stream + "|" + group
	cursor := r.cursors[key]
	log := r.streams[stream]

	if cursor >= len(log) {
		return nil, nil
	}

	end := cursor + count
	if end > len(log) {
		end = len(log)
	}
	batch := make([]domain.StreamMessage, end-cursor)
	copy(batch, log[cursor:end])
	r.cursors[key] = end
	return batch, nil
}

func (r *StreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.acked[stream+"|"+group+"|"+messageID] = true
	return nil
}

func (r *StreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := stream + "|" + group
	if _, exists := r.cursors[key]; !exists {
		r.cursors[key] = 0
	}
	return nil
}

// IsAcked нужен тестам воркера уведомлений
func (r *StreamRepository) IsAcked(stream, group, messageID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.acked[stream+"|"+group+"|"+messageID]
}

// Len возвращает число сообщений в стриме
func (r *StreamRepository) Len(stream string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.streams[stream])
}
