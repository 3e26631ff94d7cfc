package user

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Development fixture data. The uuid fragment keeps generated emails
// unique enough; the rare collision is skipped rather than aborting the
// batch.

var (
	fakeFirstNames = []string{
		"ada", "brian", "carol", "dmitri", "elena",
		"felix", "grace", "hugo", "irene", "jonas",
	}
	fakeLastNames = []string{
		"larsen", "moreno", "novak", "okafor", "petrov",
		"quinn", "rossi", "sato", "tanaka", "weber",
	}
	fakeCities = []string{
		"Lisbon", "Oslo", "Kyoto", "Montreal", "Valencia",
		"Tallinn", "Cork", "Leipzig", "Porto", "Gdansk",
	}
	fakeWords = []string{
		"quiet", "garden", "river", "lantern", "autumn",
		"paper", "window", "harbor", "meadow", "copper",
		"violet", "cedar", "morning", "thread", "stone",
	}
)

func fakeWord() string {
	return fakeWords[rand.Intn(len(fakeWords))]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func fakeSentence() string {
	n := 4 + rand.Intn(5)
	words := make([]string, n)
	for i := range words {
		words[i] = fakeWord()
	}
	return capitalize(words[0]) + " " + strings.Join(words[1:], " ") + "."
}

func fakePastTime() time.Time {
	days := rand.Intn(365 * 3)
	return time.Now().UTC().AddDate(0, 0, -days)
}

// fakeEmail is a var so tests can force collisions.
var fakeEmail = func(first, last string) string {
	return fmt.Sprintf("%s.%s.%s@example.com", first, last, uuid.NewString()[:8])
}

// GenerateFake inserts count randomized, confirmed accounts for
// development and testing. A uniqueness violation on a generated email
// skips that row and the batch keeps going; any other storage failure
// stops generation and propagates. Returns how many rows were inserted.
func GenerateFake(db *gorm.DB, count int) (int, error) {
	inserted := 0
	for i := 0; i < count; i++ {
		first := fakeFirstNames[rand.Intn(len(fakeFirstNames))]
		last := fakeLastNames[rand.Intn(len(fakeLastNames))]
		u := User{
			Email:       fakeEmail(first, last),
			Username:    fmt.Sprintf("%s_%s", first, last),
			Confirmed:   true,
			Name:        capitalize(first) + " " + capitalize(last),
			Location:    fakeCities[rand.Intn(len(fakeCities))],
			AboutMe:     fakeSentence(),
			MemberSince: fakePastTime(),
		}
		if err := u.SetPassword(fakeWord()); err != nil {
			return inserted, err
		}
		if err := Create(db, "", &u); err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "unique") {
				continue
			}
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
