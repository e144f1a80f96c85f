package state

import (
	"sync"
	"testing"
)

func TestGetReturnsInitialDefaults(t *testing.T) {
	loc := NewActiveLocation(DefaultRoom, DefaultDrawer)
	room, drawer := loc.Get()
	if room != "Sala 1" || drawer != "Gaveta 1" {
		t.Errorf("initial pair = (%q, %q), want (Sala 1, Gaveta 1)", room, drawer)
	}
}

func TestSetReplacesBothHalves(t *testing.T) {
	loc := NewActiveLocation(DefaultRoom, DefaultDrawer)
	loc.Set("Sala 3", "Gaveta 4")
	room, drawer := loc.Get()
	if room != "Sala 3" || drawer != "Gaveta 4" {
		t.Errorf("pair after Set = (%q, %q), want (Sala 3, Gaveta 4)", room, drawer)
	}
}

// Concurrent writers of two distinct pairs must never let a reader
// observe a cross pair such as ("Sala 2", "Gaveta 3").
func TestConcurrentSetNeverTearsThePair(t *testing.T) {
	loc := NewActiveLocation(DefaultRoom, DefaultDrawer)
	pairs := map[string]string{
		"Sala 1": "Gaveta 1",
		"Sala 2": "Gaveta 1",
		"Sala 3": "Gaveta 3",
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for room, drawer := range pairs {
		wg.Add(1)
		go func(room, drawer string) {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					loc.Set(room, drawer)
				}
			}
		}(room, drawer)
	}

	for i := 0; i < 10000; i++ {
		room, drawer := loc.Get()
		if want, ok := pairs[room]; !ok || drawer != want {
			t.Fatalf("observed torn pair (%q, %q)", room, drawer)
		}
	}
	close(stop)
	wg.Wait()
}
