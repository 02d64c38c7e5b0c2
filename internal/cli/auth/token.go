package auth

import fsrepo "AssetRegistry/internal/cli/repo/fs"

// LoadToken reads the stored auth token.
func LoadToken() (string, error) {
	return fsrepo.AuthFSStore{}.Load()
}

// SaveToken persists the auth token.
func SaveToken(token string) error {
	return fsrepo.AuthFSStore{}.Save(token)
}
