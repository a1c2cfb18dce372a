package collector

import (
	"testing"

	"github.com/docker/docker/api/types/container"
)

func TestContainerInfos(t *testing.T) {
	list := []container.Summary{
		{
			ID:      "0123456789abcdef0123",
			Names:   []string{"/web"},
			Image:   "nginx:1.27",
			Status:  "Up 3 hours",
			State:   "running",
			Created: 1700000000,
		},
		{ID: "short", Image: "busybox", State: "exited"},
	}

	got := containerInfos(list)
	if len(got) != 2 {
		t.Fatalf("containerInfos returned %d entries, want 2", len(got))
	}
	if got[0].ID != "0123456789ab" || got[0].Name != "web" || got[0].State != "running" {
		t.Errorf("first container = %+v", got[0])
	}
	if got[1].ID != "short" || got[1].Name != "" {
		t.Errorf("second container = %+v", got[1])
	}
}
