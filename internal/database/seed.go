package database

import (
	"log"

	"gorm.io/gorm"

	"shchuropedia/wiki-service/internal/article"
	articleModel "shchuropedia/wiki-service/internal/model/article"
)

var demoArticles = []articleModel.Article{
	{
		Title: "главная",
		Content: "# Добро пожаловать в Щуропедию!\n\n" +
			"Это главная страница Щуропедии.\n\n" +
			"## Возможности\n\n" +
			"- Создание статей\n" +
			"- Редактирование статей\n" +
			"- История изменений\n" +
			"- Поиск по статьям\n\n" +
			"## Быстрый старт\n\n" +
			"[Создайте свою первую статью!](/create)",
	},
	{
		Title: "дядя-щура",
		Content: "# Дядя Щура\n\n" +
			"**Дядя Щура** (легендарный 1488 вв. до н.э.) — великий волхв и духовный учитель.\n\n" +
			"## Биография\n\n" +
			"### Ранние годы\n" +
			"Согласно древним преданиям, Дядя Щура родился в семье жрецов в регионе Восточной Скифии.\n\n" +
			"### Духовное пробуждение\n" +
			"В возрасте 30 лет пережил великое откровение, после которого начал проповедовать новое учение.",
	},
}

// SeedDemoArticles 空库时写入演示文章
// 和正常创建走同一套语义：每篇同时落一条历史基线
func SeedDemoArticles(db *gorm.DB) error {
	repo := article.NewArticleRepository(db)

	count, err := repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("数据库为空，创建演示文章")

	return db.Transaction(func(tx *gorm.DB) error {
		articleRepo := article.NewArticleRepository(tx)
		historyRepo := article.NewHistoryRepository(tx)

		for i := range demoArticles {
			art := demoArticles[i]
			if err := articleRepo.Create(&art); err != nil {
				return err
			}
			if _, err := historyRepo.Record(art.ID, art.Content, art.AuthorID); err != nil {
				return err
			}
			log.Printf("创建演示文章: %s", art.Title)
		}
		return nil
	})
}
