package repository

import (
	"testing"
	"time"

	"perpus-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(offset int) time.Time {
	return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestVisitorIncrementOrCreate(t *testing.T) {
	db := newTestDB(t)
	repo := NewVisitorRepository(db)

	// 第一次：当天没有记录，插入 count=1
	require.NoError(t, repo.IncrementOrCreate(day(0)))
	// 之后：走累加分支
	require.NoError(t, repo.IncrementOrCreate(day(0)))
	require.NoError(t, repo.IncrementOrCreate(day(0)))

	var rows []model.DailyVisitor
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 3, rows[0].Count)

	// 不同日期各自独立
	require.NoError(t, repo.IncrementOrCreate(day(1)))
	total, err := repo.SumCounts()
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
}

func TestVisitorUniquePerDay(t *testing.T) {
	db := newTestDB(t)
	repo := NewVisitorRepository(db)

	require.NoError(t, repo.IncrementOrCreate(day(0)))
	// 模拟并发首请求的输家：直接再插一条同日期的行，必须撞唯一索引
	err := db.Create(&model.DailyVisitor{Date: day(0), Count: 1}).Error
	assert.Error(t, err)
}

func TestVisitorFindRecent(t *testing.T) {
	db := newTestDB(t)
	repo := NewVisitorRepository(db)

	// 乱序插入 35 天的数据
	for _, offset := range []int{5, 1, 3, 0, 2, 4} {
		require.NoError(t, db.Create(&model.DailyVisitor{Date: day(offset), Count: int64(offset + 1)}).Error)
	}
	for offset := 6; offset < 35; offset++ {
		require.NoError(t, db.Create(&model.DailyVisitor{Date: day(offset), Count: 1}).Error)
	}

	rows, err := repo.FindRecent(30)
	require.NoError(t, err)
	require.Len(t, rows, 30)

	// 返回的是最近 30 天，按日期升序
	assert.Equal(t, day(5), rows[0].Date.UTC())
	assert.Equal(t, day(34), rows[29].Date.UTC())
	for i := 1; i < len(rows); i++ {
		assert.True(t, rows[i].Date.After(rows[i-1].Date))
	}
}

func TestVisitorSumCountsEmpty(t *testing.T) {
	repo := NewVisitorRepository(newTestDB(t))
	total, err := repo.SumCounts()
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}
