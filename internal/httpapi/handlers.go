package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"imgfs/internal/imgfs"
)

// listResponse is the JSON body of GET /imgfs/list — spec §6.2:
// {"Images": [img_id, ...]}.
type listResponse struct {
	Images []string
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		replyError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	if r.URL.Query().Get("pretty") == "1" {
		enc.SetIndent("", "  ")
	}
	_ = enc.Encode(listResponse{Images: ids})
}

func (s *Server) handleRead(w http.ResponseWriter, r *http.Request) {
	resStr := r.URL.Query().Get("res")
	if resStr == "" {
		replyError(w, newErrKind(imgfs.NotEnoughArguments, "missing res query parameter"))
		return
	}
	res, ok := imgfs.ParseResolution(resStr)
	if !ok {
		replyError(w, newErrKind(imgfs.Resolutions, "unrecognized resolution %q", resStr))
		return
	}

	imgID := r.URL.Query().Get("img_id")
	if imgID == "" {
		replyError(w, newErrKind(imgfs.NotEnoughArguments, "missing img_id query parameter"))
		return
	}

	data, err := s.store.Read(r.Context(), imgID, res)
	if err != nil {
		replyError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	imgID := r.URL.Query().Get("img_id")
	if imgID == "" {
		replyError(w, newErrKind(imgfs.NotEnoughArguments, "missing img_id query parameter"))
		return
	}

	if err := s.store.Delete(r.Context(), imgID); err != nil {
		replyError(w, err)
		return
	}

	reply302(w)
}

func (s *Server) handleInsert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		replyError(w, newErrKind(imgfs.InvalidCommand, "insert requires POST"))
		return
	}

	imgID := r.URL.Query().Get("name")
	if imgID == "" {
		replyError(w, newErrKind(imgfs.NotEnoughArguments, "missing name query parameter"))
		return
	}

	if r.ContentLength > imgfs.MaxRequestSize {
		replyError(w, newErrKind(imgfs.InvalidArgument,
			"content length %d exceeds MAX_REQUEST_SIZE (%d)", r.ContentLength, imgfs.MaxRequestSize))
		return
	}

	body := http.MaxBytesReader(w, r.Body, imgfs.MaxRequestSize)
	data, err := io.ReadAll(body)
	if err != nil {
		replyError(w, newErrKind(imgfs.InvalidArgument, "reading request body: %v", err))
		return
	}

	if err := s.store.Insert(r.Context(), imgID, data); err != nil {
		replyError(w, err)
		return
	}

	reply302(w)
}

// reply302 redirects to the static index page, matching the source's
// reply_302_msg (spec §6.2: successful delete/insert replies redirect).
func reply302(w http.ResponseWriter) {
	w.Header().Set("Location", "/index.html")
	w.WriteHeader(http.StatusFound)
}

// replyError converts any store error into a 500 reply with a
// human-readable body, matching spec §7's "no 404 path for the imgfs
// routes" rule: every imgfs.Error becomes a 500 regardless of Kind.
func replyError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	fmt.Fprintf(w, "Error: %s\n", err.Error())
}

func newErrKind(kind imgfs.Kind, format string, args ...any) error {
	return &imgfs.Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (s *Server) handleUnmatched(w http.ResponseWriter, r *http.Request) {
	replyError(w, newErrKind(imgfs.InvalidCommand, "no such route: %s %s", r.Method, r.URL.Path))
}
