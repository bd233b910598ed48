// Package report renders PDF summaries of completed consultations.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/signintech/gopdf"

	"smart-hospital/internal/oracle"
)

// Summary is everything the PDF needs from a completed consultation.
type Summary struct {
	ConsultationID uuid.UUID
	PatientName    string
	Age            int
	Gender         string
	Symptoms       []string
	Predictions    []oracle.Prediction
	GeneratedAt    time.Time
}

type Service struct {
	fontPaths []string
}

func NewService() *Service {
	return &Service{
		// Common DejaVuSans locations across distros.
		fontPaths: []string{
			"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		},
	}
}

const disclaimer = "This AI tool provides preliminary predictions only and should not replace " +
	"professional medical advice. Always consult a qualified healthcare provider."

// Render produces the consultation report as PDF bytes.
func (s *Service) Render(sum Summary) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	var fontErr error
	loaded := false
	for _, path := range s.fontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			loaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !loaded {
		return nil, fmt.Errorf("failed to load report font, ensure ttf-dejavu is installed: %w", fontErr)
	}

	if err := pdf.SetFont("DejaVu", "", 20); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Consultation Report - Smart Hospital")
	pdf.Br(30)

	if err := pdf.SetFont("DejaVu", "", 12); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Date: %s", sum.GeneratedAt.Format("02.01.2006 15:04")))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Consultation ID: %s", sum.ConsultationID))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Patient: %s (%d, %s)", sum.PatientName, sum.Age, sum.Gender))
	pdf.Br(25)

	if err := pdf.SetFont("DejaVu", "", 14); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Reported symptoms:")
	pdf.Br(15)

	if err := pdf.SetFont("DejaVu", "", 11); err != nil {
		return nil, err
	}
	if len(sum.Symptoms) == 0 {
		pdf.Cell(nil, "- No symptoms reported.")
		pdf.Br(15)
	}
	for _, symptom := range sum.Symptoms {
		pdf.Cell(nil, "- "+symptom)
		pdf.Br(12)
	}
	pdf.Br(15)

	if err := pdf.SetFont("DejaVu", "", 14); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "AI predictions:")
	pdf.Br(15)

	if err := pdf.SetFont("DejaVu", "", 11); err != nil {
		return nil, err
	}
	for i, p := range sum.Predictions {
		pdf.Cell(nil, fmt.Sprintf("%d. %s - %.1f%% confidence", i+1, p.Disease, p.Probability*100))
		pdf.Br(12)
	}

	pdf.SetY(270)
	if err := pdf.SetFont("DejaVu", "", 9); err != nil {
		return nil, err
	}
	lines, _ := pdf.SplitText(disclaimer, 500)
	for _, l := range lines {
		pdf.Cell(nil, l)
		pdf.Br(10)
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}
