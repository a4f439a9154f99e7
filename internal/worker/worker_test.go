package worker

import (
	"testing"
	"time"

	"github.com/inkgrain/pressline/internal/params"
	"github.com/inkgrain/pressline/internal/pipeline"
	"github.com/inkgrain/pressline/internal/raster"
)

func testSource(w, h int) *raster.Image {
	img := raster.New(w, h)
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	return img
}

func TestWorkerProcessesSubmittedRequest(t *testing.T) {
	w := New()
	defer w.Close()

	w.Submit(&Request{
		TaskID: TaskPreview,
		Source: testSource(16, 16),
		Active: params.Active{},
		Bundle: params.Bundle{},
		Options: pipeline.Options{
			PreviewMaxPx: 256,
		},
	})

	select {
	case resp := <-w.Responses():
		if resp.TaskID != TaskPreview {
			t.Errorf("expected TaskPreview response, got %v", resp.TaskID)
		}
		if resp.Err != nil {
			t.Errorf("unexpected pipeline error: %v", resp.Err)
		}
		if resp.Result == nil {
			t.Fatal("expected a non-nil result")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for worker response")
	}
}

func TestWorkerCoalescesSameClassRequests(t *testing.T) {
	w := New()
	defer w.Close()

	// submit two requests of the same class back to back before the worker
	// has a chance to drain the first one; the second should win.
	w.Submit(&Request{TaskID: TaskLoupe, Source: testSource(64, 64), Active: params.Active{}, Bundle: params.Bundle{}})
	w.Submit(&Request{TaskID: TaskLoupe, Source: testSource(8, 8), Active: params.Active{}, Bundle: params.Bundle{}})

	select {
	case resp := <-w.Responses():
		if resp.Result.Width != 8 {
			t.Errorf("expected the coalesced (second) request to win, got width %d", resp.Result.Width)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for worker response")
	}
}

func TestWorkerClosesResponsesChannel(t *testing.T) {
	w := New()
	w.Close()

	select {
	case _, ok := <-w.Responses():
		if ok {
			t.Fatal("expected the responses channel to be closed with no pending work")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the responses channel to close")
	}
}
