package flight

import (
	"context"
	"skybook/internal/offer"
	"skybook/pkg/cache"
	"skybook/pkg/duffelclient"
	"strconv"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockFlightClient is a mock implementation of FlightClient
type MockFlightClient struct {
	mock.Mock
}

func (m *MockFlightClient) CreateOfferRequest(ctx context.Context, in duffelclient.OfferRequestInput) (*duffelclient.OfferRequest, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*duffelclient.OfferRequest), args.Error(1)
}

func (m *MockFlightClient) GetOffer(ctx context.Context, id string) (*offer.RawOffer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.RawOffer), args.Error(1)
}

func (m *MockFlightClient) ListAirports(ctx context.Context) ([]duffelclient.Airport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]duffelclient.Airport), args.Error(1)
}

func (m *MockFlightClient) CreateOrder(ctx context.Context, in duffelclient.OrderInput) (*duffelclient.Order, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*duffelclient.Order), args.Error(1)
}

// MockCache is a mock implementation of cache.Cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Del(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// memoryCache is a working cache for flows that read back what they wrote.
type memoryCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string]string{}}
}

func (c *memoryCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return v, nil
}

func (c *memoryCache) Del(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

type sequenceIDs struct {
	mu sync.Mutex
	n  int64
}

func (s *sequenceIDs) GenerateID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return s.n
}

func (s *sequenceIDs) GenerateString() string {
	return "id-" + strconv.FormatInt(s.GenerateID(), 10)
}
