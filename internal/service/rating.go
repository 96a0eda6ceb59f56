package service

import (
	"Boomer/internal/pkg/mongo"
	"math"
)

// ComputeAggregate 计算平均分 (四舍五入) 与评价数，空序列返回 (0, 0)
func ComputeAggregate(reviews []mongo.Review) (rating int, count int) {
	count = len(reviews)
	if count == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return int(math.Round(float64(sum) / float64(count))), count
}
