package models

// User is a registered account. Rows are created at registration and never
// mutated or deleted by the application.
type User struct {
	ID       uint   `gorm:"primary_key" json:"id"`
	Username string `gorm:"unique;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
}

// TableName matches the schema the original deployment created.
func (User) TableName() string { return "user" }

// Video is one uploaded video's metadata. S3Key addresses the stored object;
// deleting a Video row does not remove the object. Uploader is a copy of the
// uploading user's name at upload time, with no foreign key behind it.
type Video struct {
	ID       uint    `gorm:"primary_key" json:"id"`
	Title    string  `gorm:"not null" json:"title"`
	S3Key    string  `gorm:"column:s3_key;not null" json:"s3_key"`
	Uploader *string `json:"uploader"`
}

func (Video) TableName() string { return "video" }
