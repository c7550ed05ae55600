// pkg/shape/throttle_test.go
package shape

import (
	"testing"
	"time"
)

func TestDisturbThrottle_AllowsUpToLimit(t *testing.T) {
	throttle := NewDisturbThrottle(3, time.Hour)

	for i := 0; i < 3; i++ {
		if !throttle.Allow("pointer") {
			t.Fatalf("call %d denied within limit", i)
		}
	}
	if throttle.Allow("pointer") {
		t.Error("call beyond limit was allowed")
	}
}

func TestDisturbThrottle_SourcesAreIndependent(t *testing.T) {
	throttle := NewDisturbThrottle(1, time.Hour)

	if !throttle.Allow("pointer") {
		t.Fatal("first source denied its first call")
	}
	if !throttle.Allow("script") {
		t.Error("second source throttled by first source's usage")
	}
	if throttle.Allow("pointer") {
		t.Error("exhausted source was allowed")
	}
}

func TestDisturbThrottle_RefillsOverTime(t *testing.T) {
	throttle := NewDisturbThrottle(2, 20*time.Millisecond)

	throttle.Allow("pointer")
	throttle.Allow("pointer")
	if throttle.Allow("pointer") {
		t.Fatal("exhausted bucket allowed a call")
	}

	time.Sleep(30 * time.Millisecond)
	if !throttle.Allow("pointer") {
		t.Error("bucket did not refill after the window elapsed")
	}
}
