package meeting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFallbackProviderIssuesUniqueLinks(t *testing.T) {
	provider := NewFallbackProvider()

	when := time.Now().Add(48 * time.Hour)
	first, err := provider.Provision(context.Background(), &when, "SkillSwap session #1")
	if err != nil {
		t.Fatalf("provision: %v", err)
	}
	if !strings.HasPrefix(first, "https://") {
		t.Fatalf("expected https URI, got %q", first)
	}

	second, err := provider.Provision(context.Background(), nil, "SkillSwap session #2")
	if err != nil {
		t.Fatalf("provision without scheduled time: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct links per provision")
	}
}

func TestFallbackProviderHonorsCancelledContext(t *testing.T) {
	provider := NewFallbackProvider()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := provider.Provision(ctx, nil, "session"); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
