package article

import (
	"context"
	"log"
	"time"

	"shchuropedia/wiki-service/internal/model/article"
	"shchuropedia/wiki-service/pkg/database"
)

const dailyKeyPrefix = "wiki:daily:"

// DailyPicker "今日文章"推荐
// 显式的缓存实体：redis 中按日历日期作key（wiki:daily:2026-08-29），
// 当天首次访问时随机选出并 SETNX 锁定，跨实例结果一致，next day 自动失效
// redis 不可用时退化为每次直接随机，不报错
type DailyPicker struct {
	articleRepo *ArticleRepository
	redis       *database.RedisClient
}

func NewDailyPicker(articleRepo *ArticleRepository, redis *database.RedisClient) *DailyPicker {
	return &DailyPicker{articleRepo: articleRepo, redis: redis}
}

// Today 返回今天的推荐文章
func (p *DailyPicker) Today(ctx context.Context) (*article.Article, error) {
	if p.redis == nil {
		return p.articleRepo.PickRandom()
	}

	key := dailyKeyPrefix + time.Now().Format("2006-01-02")

	title, err := p.redis.Get(ctx, key).Result()
	if err == nil && title != "" {
		art, err := p.articleRepo.GetByTitle(title)
		if err == nil {
			return art, nil
		}
		// 缓存的文章可能刚被删除，往下重新选
	}

	art, err := p.articleRepo.PickRandom()
	if err != nil {
		return nil, err
	}

	// SETNX 保证多实例下当天只锁定一篇；过期时间到当天结束
	if err := p.redis.SetNX(ctx, key, art.Title, untilMidnight()).Err(); err != nil {
		log.Printf("今日文章缓存写入失败: %v", err)
	}

	// 并发首次访问时可能别的实例先锁定了，以缓存为准
	if locked, err := p.redis.Get(ctx, key).Result(); err == nil && locked != art.Title {
		if cached, err := p.articleRepo.GetByTitle(locked); err == nil {
			return cached, nil
		}
	}

	return art, nil
}

// untilMidnight 距离当天结束的时长
func untilMidnight() time.Duration {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
	return time.Until(midnight)
}
