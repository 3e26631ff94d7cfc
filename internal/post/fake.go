package post

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"gorm.io/gorm"

	"goblog/internal/user"
)

var fakeWords = []string{
	"harbor", "lantern", "meadow", "orchard", "pebble",
	"quarry", "ripple", "saffron", "timber", "willow",
	"ember", "fable", "glacier", "hollow", "ivory",
}

func fakeSentences(n int) string {
	sentences := make([]string, n)
	for i := range sentences {
		words := make([]string, 5+rand.Intn(6))
		for j := range words {
			words[j] = fakeWords[rand.Intn(len(fakeWords))]
		}
		s := strings.Join(words, " ") + "."
		sentences[i] = strings.ToUpper(s[:1]) + s[1:]
	}
	return strings.Join(sentences, " ")
}

// GenerateFake inserts count posts, each authored by a randomly chosen
// existing account and committed on its own. Requires at least one user
// to exist.
func GenerateFake(db *gorm.DB, count int) (int, error) {
	var userCount int64
	if err := db.Model(&user.User{}).Count(&userCount).Error; err != nil {
		return 0, err
	}
	if userCount == 0 {
		return 0, errors.New("no users exist to author posts")
	}
	inserted := 0
	for i := 0; i < count; i++ {
		var author user.User
		offset := rand.Intn(int(userCount))
		if err := db.Offset(offset).First(&author).Error; err != nil {
			return inserted, err
		}
		days := rand.Intn(365 * 2)
		ts := time.Now().UTC().AddDate(0, 0, -days)
		p := New(&author, fakeSentences(1+rand.Intn(3)), ts)
		if err := db.Create(p).Error; err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
