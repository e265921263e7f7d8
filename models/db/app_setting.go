package dbmodels

type AppSetting struct {
	BaseModel
	Key   string `gorm:"type:varchar(150);uniqueIndex"`
	Value string `gorm:"type:varchar(500)"`
}

type StoredFile struct {
	BaseModel
	FileName    string `gorm:"type:varchar(255)"`
	ContentType string `gorm:"type:varchar(100)"`
	Size        int64
	UploadedBy  string
	ObjectKey   string `gorm:"type:varchar(300);uniqueIndex"`
}
