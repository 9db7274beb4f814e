package wallet

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Errors.
var (
	ErrWalletNotFound = errors.New("wallet not found")
	ErrWalletExists   = errors.New("wallet already exists")
	ErrInvalidKey     = errors.New("invalid private key")
)

// Wallet holds metadata for one signing wallet. The private key lives in
// the keystore under KeyRef, never on disk.
type Wallet struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	KeyRef    string `json:"key_ref"`
	IsDefault bool   `json:"is_default"`
	CreatedAt string `json:"created_at"`
}

// Addr returns the wallet address as a parsed common.Address.
func (w *Wallet) Addr() common.Address {
	return common.HexToAddress(w.Address)
}

// Store persists wallet records.
type Store interface {
	Load() ([]*Wallet, error)
	Save([]*Wallet) error
}

// Manager handles wallet CRUD backed by a Store and a SecretStore.
type Manager struct {
	store   Store
	secrets SecretStore
	wallets map[string]*Wallet
	loaded  bool
}

// NewManager creates a wallet manager.
func NewManager(store Store, secrets SecretStore) *Manager {
	return &Manager{store: store, secrets: secrets, wallets: make(map[string]*Wallet)}
}

// Create generates a fresh key, stores it in the keystore, and records the
// wallet.
func (m *Manager) Create(name string) (*Wallet, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("generating key: %w", err)
	}
	return m.add(name, hex.EncodeToString(crypto.FromECDSA(key)))
}

// Import records a wallet from an existing hex private key.
func (m *Manager) Import(name, hexKey string) (*Wallet, error) {
	return m.add(name, stripHexPrefix(hexKey))
}

func (m *Manager) add(name, hexKey string) (*Wallet, error) {
	if err := m.load(); err != nil {
		return nil, err
	}
	if _, ok := m.wallets[name]; ok {
		return nil, ErrWalletExists
	}

	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	ref, err := m.secrets.Store(name, hexKey)
	if err != nil {
		return nil, err
	}

	w := &Wallet{
		Name:      name,
		Address:   crypto.PubkeyToAddress(key.PublicKey).Hex(),
		KeyRef:    ref,
		IsDefault: len(m.wallets) == 0,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	m.wallets[name] = w
	return w, m.save()
}

// Get returns a wallet by name.
func (m *Manager) Get(name string) (*Wallet, error) {
	if err := m.load(); err != nil {
		return nil, err
	}
	w, ok := m.wallets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWalletNotFound, name)
	}
	return w, nil
}

// Default returns the default wallet, or an error when none is set.
func (m *Manager) Default() (*Wallet, error) {
	if err := m.load(); err != nil {
		return nil, err
	}
	for _, w := range m.wallets {
		if w.IsDefault {
			return w, nil
		}
	}
	return nil, fmt.Errorf("%w: no default wallet", ErrWalletNotFound)
}

// SetDefault marks name as the default wallet.
func (m *Manager) SetDefault(name string) error {
	if err := m.load(); err != nil {
		return err
	}
	target, ok := m.wallets[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrWalletNotFound, name)
	}
	for _, w := range m.wallets {
		w.IsDefault = false
	}
	target.IsDefault = true
	return m.save()
}

// Remove deletes a wallet record and its stored key.
func (m *Manager) Remove(name string) error {
	if err := m.load(); err != nil {
		return err
	}
	w, ok := m.wallets[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrWalletNotFound, name)
	}
	if err := m.secrets.Delete(w.KeyRef); err != nil {
		return err
	}
	delete(m.wallets, name)
	return m.save()
}

// List returns all wallets sorted by name.
func (m *Manager) List() ([]*Wallet, error) {
	if err := m.load(); err != nil {
		return nil, err
	}
	out := make([]*Wallet, 0, len(m.wallets))
	for _, w := range m.wallets {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Manager) load() error {
	if m.loaded {
		return nil
	}
	ws, err := m.store.Load()
	if err != nil {
		return fmt.Errorf("loading wallets: %w", err)
	}
	for _, w := range ws {
		m.wallets[w.Name] = w
	}
	m.loaded = true
	return nil
}

func (m *Manager) save() error {
	ws := make([]*Wallet, 0, len(m.wallets))
	for _, w := range m.wallets {
		ws = append(ws, w)
	}
	sort.Slice(ws, func(i, j int) bool { return ws[i].Name < ws[j].Name })
	if err := m.store.Save(ws); err != nil {
		return fmt.Errorf("saving wallets: %w", err)
	}
	return nil
}

func stripHexPrefix(s string) string {
	return strings.TrimPrefix(s, "0x")
}

// JSONStore persists wallet records to a JSON file.
type JSONStore struct {
	Path string
}

func (s *JSONStore) Load() ([]*Wallet, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ws []*Wallet
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, err
	}
	return ws, nil
}

func (s *JSONStore) Save(ws []*Wallet) error {
	data, err := json.MarshalIndent(ws, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o600)
}

// MemStore keeps wallet records in memory (for tests).
type MemStore struct {
	ws []*Wallet
}

func (s *MemStore) Load() ([]*Wallet, error) { return s.ws, nil }
func (s *MemStore) Save(ws []*Wallet) error  { s.ws = ws; return nil }
