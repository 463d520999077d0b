package connect

import (
	"os"

	"github.com/supabase-community/supabase-go"
)

var SupabaseClient *supabase.Client

// InitSupabase creates the shared client from SUPABASE_URL and
// SUPABASE_ANON_KEY, returning the url and key as well so repositories can
// mint per-request authenticated clients.
func InitSupabase() (*supabase.Client, string, string, error) {
	url := os.Getenv("SUPABASE_URL")
	key := os.Getenv("SUPABASE_ANON_KEY")
	client, err := supabase.NewClient(url, key, nil)
	if err != nil {
		return nil, "", "", err
	}
	SupabaseClient = client
	return client, url, key, nil
}

func Disconnect() {
	SupabaseClient = nil
}
