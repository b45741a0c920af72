// Package telemetry forwards goal change records to logs and Kafka.
package telemetry

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/pingcap/errors"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"sword-goal/internal/goal"
)

// LogSink writes each record as an info event.
type LogSink struct {
	logger zerolog.Logger
}

func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger.With().Str("component", "goal").Logger()}
}

func (s *LogSink) Emit(rec goal.DiffRecord) {
	ev := s.logger.Info().
		Str("field", string(rec.Field)).
		Interface("old", rec.Old).
		Interface("new", rec.New)
	if rec.Context != nil {
		ev = ev.Int("chapter", rec.Context.Chapter).Int("verse", rec.Context.Verse)
	}
	ev.Msg("goal changed")
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaConfig configures a KafkaSink.
type KafkaConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// queueSize bounds the records waiting for the publisher goroutine.
const queueSize = 256

// KafkaSink publishes one JSON message per record, keyed by field. Emit only
// enqueues; a background goroutine does the writes. Records are dropped and
// logged when the queue is full or a write fails.
type KafkaSink struct {
	writer  messageWriter
	timeout time.Duration
	logger  zerolog.Logger

	queue     chan goal.DiffRecord
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// NewKafkaSink returns a sink writing to cfg.Topic.
func NewKafkaSink(cfg KafkaConfig, logger zerolog.Logger) (*KafkaSink, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka: no brokers")
	}
	if cfg.Topic == "" {
		return nil, errors.New("kafka: no topic")
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
		Transport: &kafka.Transport{
			DialTimeout: 5 * time.Second,
		},
	}
	return newKafkaSink(w, cfg.WriteTimeout, logger), nil
}

func newKafkaSink(w messageWriter, timeout time.Duration, logger zerolog.Logger) *KafkaSink {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	s := &KafkaSink{
		writer:  w,
		timeout: timeout,
		logger:  logger.With().Str("component", "kafka").Logger(),
		queue:   make(chan goal.DiffRecord, queueSize),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

// Emit queues rec for publishing and returns at once.
func (s *KafkaSink) Emit(rec goal.DiffRecord) {
	select {
	case <-s.stop:
		s.logger.Warn().Str("field", string(rec.Field)).Msg("sink closed, dropping change record")
		return
	default:
	}

	select {
	case s.queue <- rec:
	default:
		s.logger.Warn().Str("field", string(rec.Field)).Msg("queue full, dropping change record")
	}
}

func (s *KafkaSink) run() {
	defer close(s.done)
	for {
		select {
		case rec := <-s.queue:
			s.publish(rec)
		case <-s.stop:
			for {
				select {
				case rec := <-s.queue:
					s.publish(rec)
				default:
					return
				}
			}
		}
	}
}

func (s *KafkaSink) publish(rec goal.DiffRecord) {
	value, err := json.Marshal(rec)
	if err != nil {
		s.logger.Warn().Err(err).Str("field", string(rec.Field)).Msg("encode change record")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(rec.Field),
		Value: value,
		Time:  time.Now(),
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		s.logger.Warn().Err(err).Str("field", string(rec.Field)).Msg("publish change record")
	}
}

// Close publishes the records still queued, then closes the writer.
func (s *KafkaSink) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		<-s.done
		s.closeErr = errors.Trace(s.writer.Close())
	})
	return s.closeErr
}

// Multi emits every record to each sink in order.
type Multi []goal.Emitter

func (m Multi) Emit(rec goal.DiffRecord) {
	for _, e := range m {
		e.Emit(rec)
	}
}

// ParseBrokers splits a comma separated broker list, dropping blanks.
func ParseBrokers(s string) []string {
	var out []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
