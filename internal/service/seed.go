package service

import (
	"time"

	"sdgportal/internal/model"
)

// seedCategories is the fixed enumeration shipped with a fresh collection.
// Documents may still carry free-text categories beyond these.
var seedCategories = []string{
	"sustainability",
	"environment",
	"research",
	"community",
	"education",
}

// seedCollection is the collection written on first access: three example
// documents and the counter primed past them.
func seedCollection() *model.Collection {
	return &model.Collection{
		Documents: []model.Document{
			{
				ID:           1,
				Title:        "SDG Annual Report 2023",
				Description:  "Yearly summary of the university's progress across all seventeen Sustainable Development Goals.",
				FileName:     "sdg-annual-report-2023.pdf",
				FileSize:     "2.40",
				FileURL:      model.PlaceholderFileURL,
				UploadDate:   "January 15, 2024",
				LastModified: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
				Category:     "sustainability",
				Tags:         []string{"sdg", "report", "2023"},
			},
			{
				ID:           2,
				Title:        "Campus Waste Reduction Program",
				Description:  "Implementation guide for the zero-waste initiative across both campuses.",
				FileName:     "waste-reduction-program.docx",
				FileSize:     "1.10",
				FileURL:      model.PlaceholderFileURL,
				UploadDate:   "February 3, 2024",
				LastModified: time.Date(2024, 2, 3, 14, 30, 0, 0, time.UTC),
				Category:     "environment",
				Tags:         []string{"waste", "recycling", "campus"},
			},
			{
				ID:           3,
				Title:        "Community Outreach Impact Study",
				Description:  "Research findings on the outreach programs conducted with partner barangays.",
				FileName:     "community-impact-study.pdf",
				FileSize:     "3.75",
				FileURL:      model.PlaceholderFileURL,
				UploadDate:   "March 21, 2024",
				LastModified: time.Date(2024, 3, 21, 10, 15, 0, 0, time.UTC),
				Category:     "research",
				Tags:         []string{"community", "research", "impact"},
			},
		},
		Categories: append([]string(nil), seedCategories...),
		NextID:     4,
	}
}
