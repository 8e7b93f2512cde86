package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"dwelloBack/internal/lifecycle"
	"dwelloBack/internal/models"
	"dwelloBack/internal/repositories"
	"dwelloBack/internal/services"
	"dwelloBack/utils"
)

const maxSubmissionUpload = 32 << 20

type SubmissionHandler struct {
	Service     *services.SubmissionReviewService
	Attachments *repositories.AttachmentRepository
}

// CreateSubmission accepts a multipart form: a "submission" JSON field plus
// any number of "files" parts uploaded to S3 as evidence.
func (h *SubmissionHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if err := r.ParseMultipartForm(maxSubmissionUpload); err != nil {
		jsonError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	var sub models.ServiceSubmission
	if err := json.Unmarshal([]byte(r.FormValue("submission")), &sub); err != nil {
		jsonError(w, "invalid submission payload", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreateSubmission(r.Context(), actor, sub)
	if err != nil {
		serviceError(w, err)
		return
	}

	for _, header := range r.MultipartForm.File["files"] {
		file, err := header.Open()
		if err != nil {
			jsonError(w, "failed to read uploaded file", http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			jsonError(w, "failed to read uploaded file", http.StatusBadRequest)
			return
		}
		contentType := header.Header.Get("Content-Type")
		key, err := utils.UploadFileToS3(data, header.Filename, "submissions", contentType)
		if err != nil {
			serviceError(w, err)
			return
		}
		att, err := h.Attachments.CreateAttachment(r.Context(), models.Attachment{
			OwnerType:  models.AttachmentOwnerSubmission,
			OwnerID:    created.ID,
			FileName:   header.Filename,
			StorageKey: key,
			MimeType:   contentType,
			SizeBytes:  header.Size,
		})
		if err != nil {
			serviceError(w, err)
			return
		}
		created.Attachments = append(created.Attachments, att)
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *SubmissionHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := getIDParam(r, "id")
	if err != nil {
		jsonError(w, "invalid submission id", http.StatusBadRequest)
		return
	}
	sub, err := h.Service.GetSubmission(r.Context(), actor, id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (h *SubmissionHandler) GetPendingByHome(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	homeID, err := getIDParam(r, "home_id")
	if err != nil {
		jsonError(w, "invalid home id", http.StatusBadRequest)
		return
	}
	subs, err := h.Service.GetPendingByHome(r.Context(), actor, homeID)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

// Decide settles a pending submission. Only the first decision for a
// submission wins; later ones get a conflict.
func (h *SubmissionHandler) Decide(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var body models.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	sub, err := h.Service.Decide(r.Context(), actor, body.ID, lifecycle.DecisionAction(body.Action))
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}
