package devserver

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vidsense/types"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	srv := NewServer(t.TempDir(), time.Millisecond)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func uploadTestVideo(t *testing.T, ts *httptest.Server, name string) types.UploadResponse {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("video_file", name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	part.Write([]byte("fake video bytes"))
	mw.Close()

	resp, err := http.Post(ts.URL+"/upload-video/", mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload status = %d", resp.StatusCode)
	}

	var out types.UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	return out
}

func TestUploadAndAnalyzeFlow(t *testing.T) {
	_, ts := newTestServer(t)

	up := uploadTestVideo(t, ts, "clip.mp4")
	if up.Filename != "clip.mp4" {
		t.Fatalf("filename = %q", up.Filename)
	}

	body, _ := json.Marshal(map[string]string{"video_filename": up.Filename})
	resp, err := http.Post(ts.URL+"/analyze-video/", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("analyze status = %d", resp.StatusCode)
	}

	var start types.StartResponse
	if err := json.NewDecoder(resp.Body).Decode(&start); err != nil {
		t.Fatalf("decode analyze response: %v", err)
	}
	if start.JobID == "" {
		t.Fatalf("empty job id")
	}

	// The simulated pipeline should reach completed well within the window.
	deadline := time.Now().Add(2 * time.Second)
	for {
		if time.Now().After(deadline) {
			t.Fatalf("job never completed")
		}
		r, err := http.Get(ts.URL + "/analysis/" + start.JobID)
		if err != nil {
			t.Fatalf("status: %v", err)
		}
		var snap types.StatusResponse
		if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
			t.Fatalf("decode status: %v", err)
		}
		r.Body.Close()

		if snap.Status == string(types.JobCompleted) {
			if snap.Result == nil || snap.Result.TranscriptText == "" {
				t.Fatalf("completed without result: %+v", snap)
			}
			if len(snap.Result.TranscriptSegments) == 0 || len(snap.Result.MergedTextEmotions) == 0 {
				t.Fatalf("result missing series: %+v", snap.Result)
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestAnalyzeUnknownFile(t *testing.T) {
	_, ts := newTestServer(t)

	body, _ := json.Marshal(map[string]string{"video_filename": "missing.mp4"})
	resp, err := http.Post(ts.URL+"/analyze-video/", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", resp.StatusCode)
	}
	var eb map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&eb); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if eb["detail"] == "" {
		t.Fatalf("error body missing detail: %v", eb)
	}
}

func TestStatusUnknownJob(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/analysis/nope")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", resp.StatusCode)
	}
}

func TestUploadMissingField(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/upload-video/", "application/json", bytes.NewReader([]byte("{}")))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", resp.StatusCode)
	}
}
