package configs

import (
	"github.com/vermaanurag1532/Restro-sub000/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.Restaurant{},
		&entity.Customer{}, &entity.Chef{}, &entity.Admin{},
		&entity.Dish{},
		&entity.Order{}, &entity.Table{},
		&entity.Robot{}, &entity.RobotCall{},
		&entity.Feedback{},
		&entity.Article{}, &entity.QuizQuestion{}, &entity.UserStat{},
	)
}
