// internal/services/id_generator.go
package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BannerIDGenerator mints banner identifiers without a central counter.
// Uniqueness is probabilistic: a millisecond timestamp plus twelve random
// hex characters.
type BannerIDGenerator struct{}

func (BannerIDGenerator) NewBannerID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("bn_%d_%s", time.Now().UnixMilli(), suffix)
}
