package model

// PublishRecord 已发布幻灯片记录，仅作参考，存储服务中的数据才是权威
type PublishRecord struct {
	BaseModel
	Title   string `json:"title" gorm:"size:255;not null"`
	Key     string `json:"key" gorm:"size:64;index;not null"`
	URL     string `json:"url" gorm:"size:512;not null"`
	BlobURL string `json:"blobUrl" gorm:"size:512"`
	ThemeID string `json:"themeId" gorm:"size:64"`
}

func (r *PublishRecord) TableComment() string {
	return "幻灯片发布记录"
}

func init() {
	models = append(models, &PublishRecord{})
}
