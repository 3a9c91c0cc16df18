package memory

import (
	"sync"

	"github.com/tonyprice/nhldata/internal/models"
)

// Repository caches the team directory between bot commands. The API
// wrapper itself stays cache-free; this only spares the bot a directory
// fetch on every fuzzy team lookup.
type Repository struct {
	directory *models.TeamDirectory
	mu        sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SaveTeamDirectory(d *models.TeamDirectory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.directory = d
}

func (r *Repository) GetTeamDirectory() *models.TeamDirectory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.directory
}
