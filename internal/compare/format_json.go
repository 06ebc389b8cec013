package compare

import (
	"encoding/json"

	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/numeric"
)

// JSONFormatter writes a comparison as one flat list of deals, base first.
// Full schedules are never written; Yearly adds a per-year roll-up instead.
type JSONFormatter struct {
	Pretty bool
	Yearly bool
}

type jsonDeal struct {
	*ComparisonResult
	IsBase bool                 `json:"isBase"`
	Yearly []domain.YearSummary `json:"yearly,omitempty"`
}

type jsonComparison struct {
	BaseDeal        string     `json:"baseDeal"`
	SourcePath      string     `json:"sourcePath,omitempty"`
	Deals           []jsonDeal `json:"deals"`
	Recommendations []string   `json:"recommendations"`
}

// Format renders compSet as JSON
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	doc := jsonComparison{
		BaseDeal:        compSet.BaseDealName,
		SourcePath:      compSet.SourcePath,
		Deals:           []jsonDeal{},
		Recommendations: compSet.Recommendations,
	}
	if doc.Recommendations == nil {
		doc.Recommendations = []string{}
	}
	all := compSet.All()
	for i := range all {
		d := jsonDeal{ComparisonResult: &all[i], IsBase: i == 0 && compSet.BaseResult != nil}
		if jf.Yearly {
			d.Yearly = all[i].Schedule.Yearly(numeric.MonthsPerYear)
		}
		doc.Deals = append(doc.Deals, d)
	}

	var data []byte
	var err error
	if jf.Pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
