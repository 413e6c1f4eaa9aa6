package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"foliolens/internal/analytics"
	"foliolens/internal/export"
	"foliolens/internal/i18n"
	"foliolens/internal/models"
	"foliolens/internal/validation"
)

// uploadResponse is returned after a successful extraction. The id
// addresses the cached analysis in the dashboard and export endpoints.
type uploadResponse struct {
	ID     string                 `json:"id"`
	Result *models.AnalysisResult `json:"result"`
}

// bucketJSON is one chart segment.
type bucketJSON struct {
	Category models.Category `json:"category"`
	Label    string          `json:"label"`
	Color    string          `json:"color"`
	Total    string          `json:"total"`
}

// rowJSON is one table row with the converted display amount attached.
type rowJSON struct {
	Date                string          `json:"date"`
	CleanName           string          `json:"cleanName"`
	OriginalDescription string          `json:"originalDescription"`
	Category            models.Category `json:"category"`
	Amount              string          `json:"amount"`
	Converted           string          `json:"converted"`
}

// dashboardResponse carries everything one dashboard render needs.
type dashboardResponse struct {
	HotelName          string                 `json:"hotelName"`
	HotelAddress       string                 `json:"hotelAddress"`
	GuestName          string                 `json:"guestName"`
	RoomNumber         string                 `json:"roomNumber"`
	CheckInDate        string                 `json:"checkInDate"`
	CheckOutDate       string                 `json:"checkOutDate"`
	ConfirmationNumber string                 `json:"confirmationNumber"`
	DetectedCurrency   string                 `json:"detectedCurrency"`
	DisplayCurrency    models.DisplayCurrency `json:"displayCurrency"`
	Total              string                 `json:"total"`
	Rows               []rowJSON              `json:"rows"`
	Chart              []bucketJSON           `json:"chart"`
	Top                []bucketJSON           `json:"top"`
	Labels             i18n.Labels            `json:"labels"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpload accepts a multipart PDF, runs extraction and caches the
// result under a fresh id. Non-PDF uploads are rejected before any network
// call; every extraction failure collapses to one generic localized error
// with the detail kept in the logs.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	lang := i18n.ParseLang(r.URL.Query().Get("lang"))
	labels := i18n.ForLang(lang)

	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		s.log.WithError(err).Warn("Failed to parse multipart form or request too large")
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("%s (max %d MB)", labels.ErrGeneric, s.maxUpload>>20))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.log.WithError(err).Warn("Upload request without a usable 'file' field")
		s.writeError(w, http.StatusBadRequest, labels.ErrGeneric)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.log.WithError(err).Warn("Failed to close uploaded file")
		}
	}()

	if header.Size > s.maxUpload {
		s.log.WithField("size", header.Size).Warn("Uploaded file exceeds size limit")
		s.writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("%s (max %d MB)", labels.ErrGeneric, s.maxUpload>>20))
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.maxUpload+1))
	if err != nil {
		s.log.WithError(err).Error("Failed to read uploaded file")
		s.writeError(w, http.StatusInternalServerError, labels.ErrGeneric)
		return
	}
	if int64(len(data)) > s.maxUpload {
		s.writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("%s (max %d MB)", labels.ErrGeneric, s.maxUpload>>20))
		return
	}

	if err := validation.ValidatePDF(header.Header.Get("Content-Type"), data); err != nil {
		s.log.WithError(err).WithField("filename", header.Filename).Warn("Rejected upload")
		s.writeError(w, http.StatusUnsupportedMediaType, labels.ErrNotPDF)
		return
	}

	result, err := s.extractor.Analyze(r.Context(), data)
	if err != nil {
		// Transport failures, empty responses and malformed results all
		// surface as the same generic message.
		s.log.WithError(err).Error("Extraction failed")
		s.writeError(w, http.StatusBadGateway, labels.ErrGeneric)
		return
	}

	id := uuid.NewString()
	s.results.Set(id, result, gocache.DefaultExpiration)

	s.writeJSON(w, http.StatusCreated, uploadResponse{ID: id, Result: result})
}

// handleDashboard derives the table rows, the chart buckets and the top-5
// ranking for one cached analysis under the requested filters.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	lang := i18n.ParseLang(r.URL.Query().Get("lang"))
	labels := i18n.ForLang(lang)

	result, ok := s.lookupResult(r)
	if !ok {
		s.writeError(w, http.StatusNotFound, labels.ErrNotFound)
		return
	}

	display, err := models.ParseDisplayCurrency(r.URL.Query().Get("currency"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, labels.ErrGeneric)
		return
	}

	fs := filterStateFromQuery(r)
	rows := analytics.ConvertAll(result, display, s.rates)

	tableRows := analytics.FilterForTable(rows, fs)
	chartRows := analytics.FilterForCharts(rows, fs.StartDate, fs.EndDate)
	buckets := analytics.AggregateByCategory(chartRows)
	top := analytics.TopN(buckets, 5)

	resp := dashboardResponse{
		HotelName:          result.HotelName,
		HotelAddress:       result.HotelAddress,
		GuestName:          result.GuestName,
		RoomNumber:         result.RoomNumber,
		CheckInDate:        result.CheckInDate,
		CheckOutDate:       result.CheckOutDate,
		ConfirmationNumber: result.ConfirmationNumber,
		DetectedCurrency:   result.DetectedCurrency,
		DisplayCurrency:    display,
		Total:              analytics.ConvertTotal(result, display, s.rates).StringFixed(2),
		Rows:               toRowJSON(tableRows),
		Chart:              toBucketJSON(buckets, lang),
		Top:                toBucketJSON(top, lang),
		Labels:             labels,
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleExport streams the localized CSV for the filtered table rows.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	lang := i18n.ParseLang(r.URL.Query().Get("lang"))
	labels := i18n.ForLang(lang)

	result, ok := s.lookupResult(r)
	if !ok {
		s.writeError(w, http.StatusNotFound, labels.ErrNotFound)
		return
	}

	display, err := models.ParseDisplayCurrency(r.URL.Query().Get("currency"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, labels.ErrGeneric)
		return
	}

	fs := filterStateFromQuery(r)
	rows := analytics.FilterForTable(analytics.ConvertAll(result, display, s.rates), fs)
	data := export.Localized(rows, string(display), labels)

	filename := export.ExportFileName(result.HotelName)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.log.WithError(err).Warn("Failed to write CSV response")
	}
}

func (s *Server) lookupResult(r *http.Request) (*models.AnalysisResult, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}
	cached, found := s.results.Get(id)
	if !found {
		return nil, false
	}
	result, ok := cached.(*models.AnalysisResult)
	return result, ok
}

func filterStateFromQuery(r *http.Request) models.FilterState {
	q := r.URL.Query()
	return models.FilterState{
		SearchTerm: q.Get("search"),
		Category:   q.Get("category"),
		StartDate:  q.Get("from"),
		EndDate:    q.Get("to"),
	}
}

func toRowJSON(rows []analytics.Row) []rowJSON {
	out := make([]rowJSON, len(rows))
	for i, row := range rows {
		out[i] = rowJSON{
			Date:                row.Date,
			CleanName:           row.CleanName,
			OriginalDescription: row.OriginalDescription,
			Category:            row.Category,
			Amount:              row.Amount.StringFixed(2),
			Converted:           row.Converted.StringFixed(2),
		}
	}
	return out
}

func toBucketJSON(buckets []analytics.CategoryTotal, lang i18n.Lang) []bucketJSON {
	out := make([]bucketJSON, len(buckets))
	for i, b := range buckets {
		info := models.LookupCategory(b.Category)
		out[i] = bucketJSON{
			Category: b.Category,
			Label:    i18n.CategoryLabel(b.Category, lang),
			Color:    info.Color,
			Total:    b.Total.StringFixed(2),
		}
	}
	return out
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && !errors.Is(err, http.ErrHandlerTimeout) {
		s.log.WithError(err).Warn("Failed to encode JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
