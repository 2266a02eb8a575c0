package publisher

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jonalee1/adstock-visualization/internal/domain"
	"github.com/jonalee1/adstock-visualization/internal/usecase/series"
)

// MockSeriesComputer is a mock implementation of SeriesComputer for testing
type MockSeriesComputer struct {
	mock.Mock
}

func (m *MockSeriesComputer) ComputeSeries(req series.Request) (*domain.Series, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Series), args.Error(1)
}

func hillRequest() series.Request {
	return series.Request{
		Domain:   domain.NewSampleDomain(0, 1000, 10),
		Variants: []domain.Variant{{Label: "response", Params: domain.DefaultHillParams()}},
	}
}

func TestPublisher_UpdateNotifiesSubscribers(t *testing.T) {
	p := NewPublisher(series.NewSeriesService(nil, series.Options{}), nil)

	var first, second []*domain.Series
	p.Subscribe(func(s *domain.Series) { first = append(first, s) })
	p.Subscribe(func(s *domain.Series) { second = append(second, s) })

	require.NoError(t, p.Update(hillRequest()))

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Same(t, first[0], second[0])
	assert.Same(t, p.Current(), first[0])
	assert.Equal(t, 101, p.Current().Len())
}

func TestPublisher_SetParamRepublishesNewSeries(t *testing.T) {
	p := NewPublisher(series.NewSeriesService(nil, series.Options{}), nil)
	require.NoError(t, p.Update(hillRequest()))

	var received []*domain.Series
	p.Subscribe(func(s *domain.Series) { received = append(received, s) })
	require.Len(t, received, 1, "late subscribers receive the current series")
	before := received[0]

	require.NoError(t, p.SetParam(0, "half_max", 100))
	require.Len(t, received, 2)
	after := received[1]

	assert.NotSame(t, before, after)
	// Old series is untouched: x=500 was exactly half-max before the change
	assert.Equal(t, 500.0, before.Points[50].Values[0])
	assert.Greater(t, after.Points[50].Values[0], 500.0)

	hill := p.Request().Variants[0].Params.(domain.HillParams)
	assert.Equal(t, 100.0, hill.HalfMax)
}

func TestPublisher_SetParamDoesNotAliasSnapshot(t *testing.T) {
	p := NewPublisher(series.NewSeriesService(nil, series.Options{}), nil)
	req := hillRequest()
	require.NoError(t, p.Update(req))

	require.NoError(t, p.SetParam(0, "shape", 4))
	assert.Equal(t, domain.DefaultHillParams(), req.Variants[0].Params)
}

func TestPublisher_SetParamErrors(t *testing.T) {
	p := NewPublisher(series.NewSeriesService(nil, series.Options{}), nil)
	require.NoError(t, p.Update(hillRequest()))

	assert.Error(t, p.SetParam(3, "shape", 2))
	err := p.SetParam(0, "decay", 0.5)
	assert.True(t, errors.Is(err, domain.ErrUnknownField))
}

func TestPublisher_Unsubscribe(t *testing.T) {
	p := NewPublisher(series.NewSeriesService(nil, series.Options{}), nil)

	calls := 0
	id := p.Subscribe(func(*domain.Series) { calls++ })
	require.NoError(t, p.Update(hillRequest()))
	assert.Equal(t, 1, calls)

	assert.True(t, p.Unsubscribe(id))
	assert.False(t, p.Unsubscribe(id))
	assert.False(t, p.Unsubscribe(uuid.New()))

	require.NoError(t, p.SetParam(0, "shape", 3))
	assert.Equal(t, 1, calls)
}

func TestPublisher_UnsubscribeDuringUpdate(t *testing.T) {
	p := NewPublisher(series.NewSeriesService(nil, series.Options{}), nil)

	calls := make(map[string]int)
	var first uuid.UUID
	first = p.Subscribe(func(*domain.Series) {
		calls["first"]++
		p.Unsubscribe(first)
	})
	p.Subscribe(func(*domain.Series) { calls["second"]++ })
	p.Subscribe(func(*domain.Series) { calls["third"]++ })

	require.NoError(t, p.Update(hillRequest()))
	assert.Equal(t, map[string]int{"first": 1, "second": 1, "third": 1}, calls)

	require.NoError(t, p.SetParam(0, "shape", 3))
	assert.Equal(t, map[string]int{"first": 1, "second": 2, "third": 2}, calls)
}

func TestPublisher_FailedUpdateKeepsPreviousSeries(t *testing.T) {
	computer := new(MockSeriesComputer)
	p := NewPublisher(computer, nil)

	good := hillRequest()
	published := &domain.Series{Labels: []string{"response"}, Points: []domain.DataPoint{{X: 0, Values: []float64{0}}}}
	computer.On("ComputeSeries", good).Return(published, nil).Once()

	calls := 0
	p.Subscribe(func(*domain.Series) { calls++ })
	require.NoError(t, p.Update(good))

	bad := hillRequest()
	bad.Domain = domain.PeriodDomain(3)
	computer.On("ComputeSeries", bad).Return(nil, domain.ErrInvalidParameter).Once()

	err := p.Update(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
	assert.Same(t, published, p.Current())
	assert.Equal(t, good.Domain, p.Request().Domain)
	assert.Equal(t, 1, calls)

	computer.AssertExpectations(t)
}

func TestPublisher_SetDomain(t *testing.T) {
	p := NewPublisher(series.NewSeriesService(nil, series.Options{}), nil)
	assert.Error(t, p.SetDomain(domain.PeriodDomain(3)))

	require.NoError(t, p.Update(hillRequest()))
	require.NoError(t, p.SetDomain(domain.NewSampleDomain(0, 100, 50)))
	assert.Equal(t, 3, p.Current().Len())
}
