package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, width int, height int, fill color.RGBA) []byte {
	t.Helper()
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			canvas.SetRGBA(x, y, fill)
		}
	}
	var buffer bytes.Buffer
	if err := png.Encode(&buffer, canvas); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buffer.Bytes()
}

func TestPreprocessResizesAndScales(t *testing.T) {
	data := encodePNG(t, 64, 32, color.RGBA{R: 255, G: 0, B: 51, A: 255})

	tensor, err := Preprocess(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Preprocess() unexpected error: %v", err)
	}
	if len(tensor) != InputSize || len(tensor[0]) != InputSize || len(tensor[0][0]) != 3 {
		t.Fatalf("unexpected tensor shape %dx%dx%d", len(tensor), len(tensor[0]), len(tensor[0][0]))
	}

	pixel := tensor[InputSize/2][InputSize/2]
	want := []float32{1, 0, 0.2}
	for channel := range want {
		if math.Abs(float64(pixel[channel]-want[channel])) > 0.01 {
			t.Fatalf("channel %d: expected %.2f, got %.4f", channel, want[channel], pixel[channel])
		}
	}
}

func TestPreprocessRejectsNonImage(t *testing.T) {
	_, err := Preprocess(strings.NewReader("not an image"))
	if !errors.Is(err, ErrUndecodableImage) {
		t.Fatalf("expected ErrUndecodableImage, got %v", err)
	}
}

func TestLabelBounds(t *testing.T) {
	if len(Labels()) != 38 {
		t.Fatalf("expected 38 labels, got %d", len(Labels()))
	}
	first, err := Label(0)
	if err != nil || first != "Apple___Apple_scab" {
		t.Fatalf("Label(0) = %q, %v", first, err)
	}
	last, err := Label(37)
	if err != nil || last != "Tomato___healthy" {
		t.Fatalf("Label(37) = %q, %v", last, err)
	}
	for _, index := range []int{-1, 38} {
		if _, err := Label(index); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("Label(%d): expected ErrIndexOutOfRange, got %v", index, err)
		}
	}
}

func TestHTTPClientReturnsArgmax(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request predictRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(request.Instances) != 1 || len(request.Instances[0]) != 2 {
			t.Errorf("unexpected instances: %#v", request.Instances)
		}
		_, _ = w.Write([]byte(`{"predictions":[[0.1,0.7,0.7,0.2]]}`))
	}))
	defer server.Close()

	tensor := Tensor{{{0, 0, 0}}, {{1, 1, 1}}}
	index, err := NewHTTPClient(server.URL).Classify(context.Background(), tensor)
	if err != nil {
		t.Fatalf("Classify() unexpected error: %v", err)
	}
	if index != 1 {
		t.Fatalf("expected first maximum index 1, got %d", index)
	}
}

func TestHTTPClientReportsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"model loading"}`))
	}))
	defer server.Close()

	_, err := NewHTTPClient(server.URL).Classify(context.Background(), Tensor{})
	if !errors.Is(err, ErrClassifierUnavailable) {
		t.Fatalf("expected ErrClassifierUnavailable, got %v", err)
	}
}
