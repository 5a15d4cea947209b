package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gartstein/techjobs/internal/techjobs/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// MockKafkaWriter implements KafkaWriter for testing
type MockKafkaWriter struct {
	mock.Mock
}

func (m *MockKafkaWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockKafkaWriter) Close() error {
	args := m.Called()
	return args.Error(0)
}

func testJob() *models.Job {
	employer := models.NewEmployer("LaunchCode", "St. Louis")
	employer.ID = 4
	skills := []models.Skill{{Entity: models.Entity{ID: 1, Name: "Go"}}, {Entity: models.Entity{ID: 2, Name: "SQL"}}}
	job := models.NewJob("Backend Developer", employer, skills)
	job.ID = 12
	return job
}

func TestSubjects(t *testing.T) {
	job := testJob()

	subject := ForJob(job)
	assert.Equal(t, "job-12", subject.Key())
	assert.Equal(t, 4, subject.EmployerID)
	assert.Equal(t, []int{1, 2}, subject.SkillIDs)

	assert.Equal(t, "employer-4", ForEmployer(job.Employer).Key())
	assert.Equal(t, Subject{Kind: KindSkill, ID: 1, Name: "Go"}, ForSkill(&job.Skills[0]))

	orphan := ForJob(models.NewJob("Orphan", nil, nil))
	assert.Zero(t, orphan.EmployerID)
	assert.Empty(t, orphan.SkillIDs)
}

func TestNewProducerRequiresBrokers(t *testing.T) {
	_, err := NewProducer(nil, zaptest.NewLogger(t), "techjobs.events")
	assert.Error(t, err)
}

func TestProducer_Produce(t *testing.T) {
	t.Run("successful produce", func(t *testing.T) {
		producer := newProducer(new(MockKafkaWriter), zaptest.NewLogger(t))

		producer.Produce(JobCreated, ForJob(testJob()))

		require.Equal(t, 1, len(producer.events))
		event := <-producer.events
		assert.Equal(t, JobCreated, event.Type)
		assert.Equal(t, 12, event.Subject.ID)
		assert.NotEmpty(t, event.ID)
		assert.False(t, event.OccurredAt.IsZero())
	})

	t.Run("dropped event when queue full", func(t *testing.T) {
		core, recorded := observer.New(zap.WarnLevel)
		producer := newProducer(new(MockKafkaWriter), zap.New(core))
		producer.events = make(chan Event, 1) // Small buffer for test

		// Fill the channel
		producer.Produce(JobCreated, ForJob(testJob()))
		producer.Produce(JobCreated, ForJob(testJob())) // This should be dropped

		assert.Equal(t, 1, recorded.FilterMessage("Kafka producer queue full, dropping event").Len())
		assert.Equal(t, 1, recorded.FilterField(zap.String("subject", "job-12")).Len())
	})
}

func TestProducer_SendEvent(t *testing.T) {
	mockWriter := new(MockKafkaWriter)
	producer := &Producer{
		writer: mockWriter,
		logger: zaptest.NewLogger(t),
	}
	event := newEvent(JobCreated, ForJob(testJob()))

	t.Run("successful send", func(t *testing.T) {
		mockWriter.On("WriteMessages", mock.Anything, mock.Anything).Return(nil)

		producer.sendEvent(context.Background(), event)

		mockWriter.AssertCalled(t, "WriteMessages", mock.Anything, []kafka.Message{
			{
				Key:   []byte("job-12"),
				Value: mustMarshal(event),
			},
		})
	})

	t.Run("serialization error", func(t *testing.T) {
		core, recorded := observer.New(zap.ErrorLevel)
		producer.logger = zap.New(core)

		// Mock JSON marshaling to force error
		oldMarshal := jsonMarshal
		jsonMarshal = func(_ interface{}) ([]byte, error) {
			return nil, errors.New("mock marshal error")
		}
		defer func() { jsonMarshal = oldMarshal }()

		producer.sendEvent(context.Background(), event)

		assert.Equal(t, 1, recorded.FilterMessage("Failed to serialize event").Len())
		assert.Equal(t, 1, recorded.FilterField(zap.String("subject", "job-12")).Len())
	})

	t.Run("write error", func(t *testing.T) {
		core, recorded := observer.New(zap.ErrorLevel)
		producer.logger = zap.New(core)
		mockWriter.ExpectedCalls = nil
		mockWriter.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("kafka error"))

		producer.sendEvent(context.Background(), event)

		assert.Equal(t, 1, recorded.FilterMessage("Failed to produce event").Len())
	})
}

func TestProducer_Close(t *testing.T) {
	mockWriter := new(MockKafkaWriter)
	mockWriter.On("Close").Return(nil)

	producer := newProducer(mockWriter, zaptest.NewLogger(t))
	producer.Close()

	select {
	case <-producer.closeChan:
	default:
		t.Error("closeChan not closed")
	}

	mockWriter.AssertCalled(t, "Close")
}

func TestProducer_EventLoop(t *testing.T) {
	mockWriter := new(MockKafkaWriter)
	delivered := make(chan struct{})
	mockWriter.On("WriteMessages", mock.Anything, mock.Anything).
		Return(nil).
		Run(func(mock.Arguments) { close(delivered) }).
		Once()
	mockWriter.On("Close").Return(nil)

	producer := newProducer(mockWriter, zaptest.NewLogger(t))
	go producer.eventLoop()
	defer producer.Close()

	producer.Produce(SkillCreated, Subject{Kind: KindSkill, ID: 3, Name: "Go"})

	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("event was not written")
	}
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard{}.Produce(JobDeleted, ForJob(testJob()))
	})
}

func mustMarshal(event Event) []byte {
	data, _ := json.Marshal(event)
	return data
}
