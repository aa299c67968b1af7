package main

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Skufu/GoTriage/internal/advisor"
	"github.com/Skufu/GoTriage/internal/catalogue"
	"github.com/Skufu/GoTriage/internal/llm"
	"github.com/Skufu/GoTriage/internal/report"
	"github.com/Skufu/GoTriage/internal/symptom"
	"github.com/Skufu/GoTriage/internal/triage"
)

const defaultImageType = "image/jpeg"

// IntakeRequest is the symptom form. Categories carries the per-category
// checkbox groups; Symptoms any free selections.
type IntakeRequest struct {
	Symptoms     []string            `json:"symptoms"`
	Categories   map[string][]string `json:"categories"`
	HasImage     bool                `json:"hasImage"`
	HasAudio     bool                `json:"hasAudio"`
	ImageQuality string              `json:"imageQuality"`
}

type ConsultRequest struct {
	IntakeRequest
	Image     string `json:"image"`
	ImageType string `json:"imageType"`
	Audio     string `json:"audio"`
	AudioName string `json:"audioName"`
}

type ReportRequest struct {
	IntakeRequest
	PatientName string `json:"patientName"`
	Assessment  string `json:"assessment"`
}

type AssessResponse struct {
	ID string `json:"id"`
	triage.Assessment
}

type ConsultResponse struct {
	ID string `json:"id"`
	advisor.Consultation
}

type ConditionResponse struct {
	catalogue.Condition
	FollowUpQuestions []string `json:"followUpQuestions"`
}

func (r IntakeRequest) selections() []string {
	return symptom.Combine(catalogue.CategoryKeys(), r.Categories, r.Symptoms...)
}

func (r IntakeRequest) validate(maxSymptoms int) []string {
	details := []string{}
	if n := len(r.selections()); n > maxSymptoms {
		details = append(details, fmt.Sprintf("too many symptoms selected: %d (max %d)", n, maxSymptoms))
	}
	if !triage.ImageQuality(r.ImageQuality).Valid() {
		details = append(details, fmt.Sprintf("imageQuality must be %q or %q", triage.ImageQualityGood, triage.ImageQualityUnknown))
	}
	return details
}

func (a *App) listSymptoms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": catalogue.Taxonomy()})
}

func (a *App) listConditions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"conditions": a.engine.Catalogue().Conditions()})
}

func (a *App) getCondition(c *gin.Context) {
	cat := a.engine.Catalogue()
	cond, ok := cat.Lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "condition not found"})
		return
	}
	c.JSON(http.StatusOK, ConditionResponse{
		Condition:         cond,
		FollowUpQuestions: cat.FollowUpQuestions(cond.ID),
	})
}

func (a *App) assess(c *gin.Context) {
	var payload IntakeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if details := payload.validate(a.maxSymptoms); len(details) > 0 {
		validationFailed(c, details)
		return
	}

	result := a.engine.Analyze(triage.Input{
		Symptoms:     payload.selections(),
		HasImage:     payload.HasImage,
		HasAudio:     payload.HasAudio,
		ImageQuality: triage.ImageQuality(payload.ImageQuality),
	})
	a.metrics.ObserveAssessment(result)

	c.JSON(http.StatusOK, AssessResponse{ID: uuid.NewString(), Assessment: result})
}

func (a *App) consult(c *gin.Context) {
	var payload ConsultRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	details := payload.validate(a.maxSymptoms)
	req := advisor.Request{
		Symptoms:     payload.selections(),
		ImageQuality: triage.ImageQuality(payload.ImageQuality),
	}
	if payload.Image != "" {
		imageType := payload.ImageType
		if imageType == "" {
			imageType = defaultImageType
		}
		mime, data, err := decodeMedia(payload.Image, imageType)
		switch {
		case err != nil:
			details = append(details, "image: "+err.Error())
		case !strings.HasPrefix(mime, "image/"):
			details = append(details, fmt.Sprintf("imageType %q is not an image type", mime))
		default:
			req.Image = &llm.Image{MIMEType: mime, Data: data}
		}
	}
	if payload.Audio != "" {
		_, data, err := decodeMedia(payload.Audio, "")
		if err != nil {
			details = append(details, "audio: "+err.Error())
		} else {
			name := payload.AudioName
			if name == "" {
				name = "recording.wav"
			}
			req.Audio = &advisor.Audio{Filename: name, Data: data}
		}
	}
	if len(details) > 0 {
		validationFailed(c, details)
		return
	}

	result := a.advisor.Consult(c.Request.Context(), req)
	a.metrics.ObserveAssessment(result.Assessment)

	c.JSON(http.StatusOK, ConsultResponse{ID: uuid.NewString(), Consultation: result})
}

// report renders the plain-text report. When the caller has no earlier
// consultation text, one is produced from the selections. Red-flag alerts
// always come from a fresh analysis so a stale or edited text cannot hide an
// emergency.
func (a *App) report(c *gin.Context) {
	var payload ReportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if details := payload.validate(a.maxSymptoms); len(details) > 0 {
		validationFailed(c, details)
		return
	}

	selections := payload.selections()
	text := payload.Assessment
	var assessment triage.Assessment
	if strings.TrimSpace(text) == "" {
		consultation := a.advisor.Consult(c.Request.Context(), advisor.Request{Symptoms: selections})
		text, assessment = consultation.Response, consultation.Assessment
	} else {
		assessment = a.engine.Analyze(triage.Input{Symptoms: selections})
	}

	r := report.TextReport(report.Input{
		PatientName: payload.PatientName,
		Assessment:  text,
		Symptoms:    symptom.Names(assessment.Symptoms),
		Alerts:      assessment.Alerts,
	}, time.Now())

	c.Header("X-Report-ID", r.ID)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(r.Body))
}

func validationFailed(c *gin.Context, details []string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":   "validation_failed",
		"details": details,
	})
}

// decodeMedia accepts raw base64 or a data URL. The MIME type of a data URL
// wins over fallbackType.
func decodeMedia(encoded, fallbackType string) (string, []byte, error) {
	mime := fallbackType
	if rest, ok := strings.CutPrefix(encoded, "data:"); ok {
		header, body, found := strings.Cut(rest, ",")
		if !found || !strings.HasSuffix(header, ";base64") {
			return "", nil, fmt.Errorf("malformed data URL")
		}
		mime = strings.TrimSuffix(header, ";base64")
		encoded = body
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", nil, fmt.Errorf("invalid base64")
	}
	if len(data) == 0 {
		return "", nil, fmt.Errorf("empty payload")
	}
	return mime, data, nil
}
