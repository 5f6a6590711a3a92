// Package certificate renders the GamEnv achievement certificate from the
// export tuple. The artifact is an opaque document to the game core; this
// renderer produces a plain-text layout clients can print or convert.
package certificate

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"ecoquest-quiz-service/internal/domain"
)

var certTemplate = template.Must(template.New("certificate").Parse(`==============================================================
            GamEnv Eco-Champion Certificate
==============================================================

                  This certifies that

                      {{.PlayerName}}

   has successfully completed the {{.Level}} level
           of the GamEnv Environmental Quiz
                   on {{.Date}}

              Points Earned: {{.Points}}
              Badges Awarded: {{.Badges}}

  Thank you for your commitment to environmental education!
               Keep protecting our planet.

--------------------------------------------------------------
      Powered by GamEnv - Sustainable Learning Initiative
==============================================================
`))

type templateData struct {
	PlayerName string
	Level      string
	Date       string
	Points     int
	Badges     string
}

// Render produces the certificate document for one completed run.
func Render(cert domain.Certificate) ([]byte, error) {
	badges := "None"
	if len(cert.Badges) > 0 {
		parts := make([]string, len(cert.Badges))
		for i, b := range cert.Badges {
			parts[i] = string(b)
		}
		badges = strings.Join(parts, ", ")
	}

	var buf bytes.Buffer
	err := certTemplate.Execute(&buf, templateData{
		PlayerName: cert.PlayerName,
		Level:      titleTier(cert.Difficulty),
		Date:       cert.Date.Format("January 2, 2006"),
		Points:     cert.Points,
		Badges:     badges,
	})
	if err != nil {
		return nil, fmt.Errorf("render certificate: %w", err)
	}
	return buf.Bytes(), nil
}

func titleTier(tier domain.Tier) string {
	s := string(tier)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
