package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCircuitBreakerRegistry_GetBreaker(t *testing.T) {
	registry := NewCircuitBreakerRegistry(DefaultCircuitBreakerConfig)

	breaker1 := registry.GetBreaker(BreakerYahoo)
	if breaker1 == nil {
		t.Fatal("expected breaker to be created")
	}

	breaker2 := registry.GetBreaker(BreakerYahoo)
	if breaker1 != breaker2 {
		t.Error("expected same breaker instance for same name")
	}

	breaker3 := registry.GetBreaker(BreakerSerper)
	if breaker1 == breaker3 {
		t.Error("expected different breaker for different name")
	}
}

func TestCircuitBreakerRegistry_Execute(t *testing.T) {
	registry := NewCircuitBreakerRegistry(DefaultCircuitBreakerConfig)
	ctx := context.Background()

	result, err := registry.Execute(ctx, BreakerSerper, func() (any, error) {
		return "ok", nil
	})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if result != "ok" {
		t.Errorf("result = %v, want 'ok'", result)
	}

	expectedErr := errors.New("provider down")
	result, err = registry.Execute(ctx, BreakerSerper, func() (any, error) {
		return nil, expectedErr
	})
	if !errors.Is(err, expectedErr) {
		t.Errorf("err = %v, want %v", err, expectedErr)
	}
	if result != nil {
		t.Errorf("expected nil result, got %v", result)
	}
}

func TestCircuitBreakerRegistry_Execute_ContextCanceled(t *testing.T) {
	registry := NewCircuitBreakerRegistry(DefaultCircuitBreakerConfig)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := registry.Execute(ctx, BreakerGroq, func() (any, error) {
		return "should not reach", nil
	})
	if err == nil {
		t.Error("expected error due to cancelled context")
	}
}

func TestCircuitBreakerRegistry_TripsAfterFailures(t *testing.T) {
	config := CircuitBreakerConfig{
		MaxRequests: 1,
		Interval:    1 * time.Minute,
		Timeout:     1 * time.Second,
	}
	registry := NewCircuitBreakerRegistry(config)
	ctx := context.Background()

	// ReadyToTrip requires at least 5 requests at >= 50% failure rate
	for i := 0; i < 5; i++ {
		_, _ = registry.Execute(ctx, BreakerYahoo, func() (any, error) {
			return nil, errors.New("fail")
		})
	}

	status := registry.Status()
	if status[BreakerYahoo].State != "open" {
		t.Fatalf("expected breaker to be open, got %s", status[BreakerYahoo].State)
	}

	executed := false
	_, err := registry.Execute(ctx, BreakerYahoo, func() (any, error) {
		executed = true
		return nil, nil
	})
	if err == nil {
		t.Error("expected error from open circuit breaker")
	}
	if executed {
		t.Error("function must not execute while breaker is open")
	}
}

func TestCircuitBreakerRegistry_Status(t *testing.T) {
	registry := NewCircuitBreakerRegistry(DefaultCircuitBreakerConfig)
	ctx := context.Background()

	_, _ = registry.Execute(ctx, BreakerYahoo, func() (any, error) {
		return "ok", nil
	})
	_, _ = registry.Execute(ctx, BreakerGroq, func() (any, error) {
		return nil, errors.New("fail")
	})

	status := registry.Status()
	if len(status) != 2 {
		t.Fatalf("expected 2 breakers in status, got %d", len(status))
	}
	if status[BreakerYahoo].TotalSuccesses != 1 {
		t.Errorf("yahoo successes = %d, want 1", status[BreakerYahoo].TotalSuccesses)
	}
	if status[BreakerGroq].TotalFailures != 1 {
		t.Errorf("groq failures = %d, want 1", status[BreakerGroq].TotalFailures)
	}
}

func TestWithCircuitBreaker(t *testing.T) {
	SetGlobalRegistry(NewCircuitBreakerRegistry(DefaultCircuitBreakerConfig))
	ctx := context.Background()

	result, err := WithCircuitBreaker(ctx, "typed-test", func() ([]string, error) {
		return []string{"a", "b"}, nil
	})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if len(result) != 2 {
		t.Errorf("len(result) = %d, want 2", len(result))
	}

	expectedErr := errors.New("typed error")
	_, err = WithCircuitBreaker(ctx, "typed-test", func() ([]string, error) {
		return nil, expectedErr
	})
	if !errors.Is(err, expectedErr) {
		t.Errorf("err = %v, want %v", err, expectedErr)
	}
}
