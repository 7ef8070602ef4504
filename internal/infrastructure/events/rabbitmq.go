package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/johnquangdev/video-subtitler/internal/domain/entities"
)

// JobEvent is the message published when a processing job finishes
type JobEvent struct {
	Type             string     `json:"type"`
	JobID            string     `json:"job_id"`
	FileID           string     `json:"file_id"`
	Status           string     `json:"status"`
	TargetLanguage   string     `json:"target_language"`
	SubtitleFile     string     `json:"srt_file,omitempty"`
	LanguageDetected string     `json:"language_detected,omitempty"`
	SegmentsCount    int        `json:"segments_count"`
	Error            string     `json:"error,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

// NewJobEvent builds the event payload for job
func NewJobEvent(job *entities.ProcessingJob) JobEvent {
	ev := JobEvent{
		Type:             "subtitle.job." + string(job.Status),
		JobID:            job.ID.String(),
		FileID:           job.FileID,
		Status:           string(job.Status),
		TargetLanguage:   job.TargetLanguage,
		SubtitleFile:     job.SubtitleFile,
		LanguageDetected: job.LanguageDetected,
		SegmentsCount:    job.SegmentsCount,
		CompletedAt:      job.CompletedAt,
	}
	if job.LastError != nil {
		ev.Error = *job.LastError
	}
	return ev
}

// RabbitMQPublisher publishes job events to a durable queue
type RabbitMQPublisher struct {
	mu    sync.Mutex
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

// NewRabbitMQPublisher dials url and declares queue
func NewRabbitMQPublisher(url, queue string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	log.Println("✅ RabbitMQ connected successfully")
	return &RabbitMQPublisher{conn: conn, ch: ch, queue: queue}, nil
}

// PublishJob sends the job outcome as JSON. amqp channels are not safe for
// concurrent publishing, so calls are serialized.
func (p *RabbitMQPublisher) PublishJob(ctx context.Context, job *entities.ProcessingJob) error {
	body, err := json.Marshal(NewJobEvent(job))
	if err != nil {
		return fmt.Errorf("failed to encode job event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx,
		"",
		p.queue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    job.ID.String(),
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Close closes the channel and connection
func (p *RabbitMQPublisher) Close() {
	if p.ch != nil {
		if err := p.ch.Close(); err != nil {
			log.Printf("⚠️ failed to close rabbitmq channel: %v", err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			log.Printf("⚠️ failed to close rabbitmq connection: %v", err)
			return
		}
	}
	log.Println("🔌 RabbitMQ Closed.")
}
