package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

const maxUploadMemory = 32 << 20 // 32 MB

// UploadHandler accepts a multipart form with fields file, projectId, slug
// and fileType (image, gallery, video, doc, documentation) and stores the
// file under the project's asset directory.
func (h *APIHandler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "Invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	projectID := r.FormValue("projectId")
	slug := r.FormValue("slug")
	fileType := r.FormValue("fileType")
	if projectID == "" || slug == "" || fileType == "" {
		http.Error(w, "projectId, slug and fileType are required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file field: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.uploadStore.Save(projectID, slug, fileType, header.Filename, file)
	if err != nil {
		h.logger.Error("failed to store upload",
			zap.String("project", projectID),
			zap.String("fileType", fileType),
			zap.Error(err))
		http.Error(w, "Failed to store upload", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"url": url})
}
