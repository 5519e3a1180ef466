package scene

import (
	"testing"

	"github.com/Faultbox/orrery/internal/engine/gfx/gfxtest"
)

func TestBackgroundLifecycle(t *testing.T) {
	rec := gfxtest.New()
	bg := &Background{Texture: 7}

	bg.Draw()
	if len(rec.Calls) != 0 {
		t.Fatal("Draw before Upload should do nothing")
	}

	if err := bg.Upload(rec); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if err := bg.Upload(rec); err != nil || rec.Count("create") != 1 {
		t.Fatalf("second Upload created again: err=%v creates=%d", err, rec.Count("create"))
	}

	rec.Reset()
	bg.Draw()
	if len(rec.Calls) != 2 || rec.Calls[0].Texture != 7 || rec.Calls[1].Op != "triangles" {
		t.Errorf("Draw calls = %+v", rec.Calls)
	}

	bg.Release()
	bg.Release()
	if rec.Live() != 0 {
		t.Errorf("live meshes = %d after Release", rec.Live())
	}
	for vao, n := range rec.Deletes {
		if n != 1 {
			t.Errorf("vao %d deleted %d times", vao, n)
		}
	}
}

func TestBackgroundUploadFailure(t *testing.T) {
	rec := gfxtest.New()
	rec.FailCreate = true

	bg := &Background{}
	if err := bg.Upload(rec); err == nil {
		t.Fatal("expected upload error")
	}
	bg.Draw()
	bg.Release()
	if len(rec.Calls) != 0 {
		t.Errorf("degraded background issued calls: %+v", rec.Calls)
	}
}
