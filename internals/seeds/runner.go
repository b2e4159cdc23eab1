package seeds

import "gorm.io/gorm"

func Run(db *gorm.DB) error {
	return EnsureDefaultAdmin(db)
}
