package idgen

import (
	"log"
	"sync"

	"inventory-app/models"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

var node *snowflake.Node

func Init() {
	var err error
	node, err = snowflake.NewNode(1)
	if err != nil {
		log.Fatalf("Failed to init Snowflake: %v", err)
	}
}

// TokenID returns an opaque unique id, used as the jti claim of session
// tokens.
func TokenID() string {
	return node.Generate().String()
}

var seqMutex sync.Mutex

// NextSequence increments the named counter and returns the new value.
// The read-modify-write runs inside one transaction behind a process
// mutex, so concurrent callers never observe the same value. Values are
// never reused: a failed vendor insert leaves a gap, not a duplicate.
func NextSequence(db *gorm.DB, name string) (int, error) {
	seqMutex.Lock()
	defer seqMutex.Unlock()

	var seq int
	err := db.Transaction(func(tx *gorm.DB) error {
		var counter models.Counter
		if err := tx.Where(models.Counter{Name: name}).FirstOrCreate(&counter).Error; err != nil {
			return err
		}

		counter.Seq++
		if err := tx.Model(&models.Counter{}).Where("name = ?", name).
			Update("seq", counter.Seq).Error; err != nil {
			return err
		}

		seq = counter.Seq
		return nil
	})
	return seq, err
}
