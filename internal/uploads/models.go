package uploads

import (
	"github.com/google/uuid"

	"github.com/open-sedori/sedori/internal/models"
)

// DocumentFile is a stored compliance document, linked to the check that
// demanded it and the required-document name it satisfies.
type DocumentFile struct {
	models.BaseModel
	CheckID      uuid.UUID `gorm:"type:uuid;column:check_id;not null;index" json:"checkId"`
	UserID       uuid.UUID `gorm:"type:uuid;column:user_id;not null;index" json:"userId"`
	DocumentName string    `gorm:"type:varchar(255);column:document_name;not null" json:"documentName"`
	FileName     string    `gorm:"type:varchar(255);column:file_name;not null" json:"fileName"`
	Key          string    `gorm:"type:varchar(255);column:key;not null;unique" json:"key"`
	URL          string    `gorm:"type:text;column:url" json:"url"`
	Size         int64     `gorm:"type:bigint;column:size" json:"size"`
	MimeType     string    `gorm:"type:varchar(255);column:mime_type" json:"mimeType"`
}

func (d *DocumentFile) TableName() string {
	return "document_files"
}
