package model

// 用户角色
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User 用户表 — 对应 users
type User struct {
	UserID         string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name           string      `gorm:"type:varchar(100);not null"                     json:"name"`
	Email          string      `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash   string      `gorm:"type:varchar(255);not null"                     json:"-"`
	Role           string      `gorm:"type:varchar(20);not null;default:'user'"       json:"role"`
	Location       *string     `gorm:"type:varchar(200)"                              json:"location,omitempty"`
	PhotoURL       *string     `gorm:"type:text"                                      json:"photo_url,omitempty"`
	SkillsOffered  StringArray `gorm:"type:text[];not null;default:'{}'"              json:"skills_offered"`
	SkillsWanted   StringArray `gorm:"type:text[];not null;default:'{}'"              json:"skills_wanted"`
	VerifiedSkills StringArray `gorm:"type:text[];not null;default:'{}'"              json:"verified_skills"`
	Availability   StringArray `gorm:"type:text[];not null;default:'{}'"              json:"availability"`
	IsPublic       bool        `gorm:"not null;default:true"                          json:"is_public"`
	IsBanned       bool        `gorm:"not null;default:false"                         json:"is_banned"`
	Rating         float64     `gorm:"not null;default:0"                             json:"rating"`
	ReviewCount    int         `gorm:"not null;default:0"                             json:"review_count"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// IsAdmin 是否为管理员
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
