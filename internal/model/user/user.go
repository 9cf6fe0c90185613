package user

import "time"

// User 用户模型
// 删除用户不会级联删除其文章，文章的 author_id 保持悬空（可为空）
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"type:varchar(50);not null;uniqueIndex" json:"username"`
	// bcrypt 哈希（自带每条记录的盐），永不外泄
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	// 角色: admin(可删除文章), user(普通用户)
	Role      string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
