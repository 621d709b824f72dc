package account

import (
	"errors"
	"fmt"
	"math"

	pb "github.com/golang/protobuf/proto"
	lru "github.com/hashicorp/golang-lru"

	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/db"
	"github.com/luminet/go-luminet/log"
	"github.com/luminet/go-luminet/lumpb"
)

var (
	ErrAccountNotExist  = errors.New("account not exist")
	ErrTrustNotExist    = errors.New("trust not exist")
	ErrBalanceOverflow  = errors.New("account balance overflow")
	ErrBalanceUnderflow = errors.New("account balance underflow")
	ErrInvalidWeight    = errors.New("invalid signer weight")
	ErrInvalidThreshold = errors.New("invalid threshold value")
	ErrTooManySigners   = errors.New("too many signers")
)

// Maximum number of additional signers of an account.
const MaxSigners = 20

// Maximum weight and threshold value.
const MaxWeight = 255

// Manager manages the accounts and trustlines.
type Manager struct {
	database db.Database
	bucket   string

	baseReserve int64

	// LRU cache for accounts
	accounts *lru.Cache

	// master account
	master *lumpb.Account
}

func NewManager(d db.Database, baseReserve int64) *Manager {
	am := &Manager{
		database:    d,
		bucket:      "ACCOUNT",
		baseReserve: baseReserve,
	}
	err := am.database.NewBucket(am.bucket)
	if err != nil {
		log.Fatalf("create db bucket %s failed: %v", am.bucket, err)
	}
	cache, err := lru.New(10000)
	if err != nil {
		log.Fatalf("create account manager LRU cache failed: %v", err)
	}
	am.accounts = cache
	return am
}

// Create master account with native asset (LUM) and initial balances.
func (am *Manager) CreateMasterAccount(networkID []byte, balance int64) error {
	pubKey, privKey, err := crypto.GetAccountKeypairFromSeed(networkID)
	if err != nil {
		return err
	}
	log.Infof("master private key (seed) is %s", privKey)

	err = am.CreateAccount(am.database, pubKey, balance, "")
	if err != nil {
		return fmt.Errorf("create master account failed: %v", err)
	}
	am.master, err = am.GetAccount(am.database, pubKey)
	if err != nil {
		return fmt.Errorf("load master account failed: %v", err)
	}

	return nil
}

// Master returns the master account of the network.
func (am *Manager) Master() *lumpb.Account {
	return am.master
}

// BaseReserve returns the base reserve of one account entry.
func (am *Manager) BaseReserve() int64 {
	return am.baseReserve
}

// Create a new account with an initial balance. The master key
// starts as the only signer with an implicit weight of one and
// all the thresholds start at zero.
func (am *Manager) CreateAccount(putter db.Putter, accountID string, balance int64, sponsor string) error {
	acc := &lumpb.Account{
		AccountID:    accountID,
		Balance:      balance,
		MasterWeight: 1,
		Thresholds:   &lumpb.Thresholds{},
		Sponsor:      sponsor,
	}

	accb, err := lumpb.Encode(acc)
	if err != nil {
		return fmt.Errorf("encode account failed: %v", err)
	}

	// save the account in db
	err = putter.Put(am.bucket, []byte(acc.AccountID), accb)
	if err != nil {
		return fmt.Errorf("save account in db failed: %v", err)
	}

	am.accounts.Remove(acc.AccountID)

	return nil
}

// Get account information from accountID, the caller always
// receives its own deep copy of the account.
func (am *Manager) GetAccount(getter db.Getter, accountID string) (*lumpb.Account, error) {
	if acc, ok := am.accounts.Get(accountID); ok {
		a := acc.(*lumpb.Account)
		accCopy := pb.Clone(a)
		return accCopy.(*lumpb.Account), nil
	}

	b, err := getter.Get(am.bucket, []byte(accountID))
	if err != nil {
		return nil, fmt.Errorf("get account %s failed: %v", accountID, err)
	}
	if b == nil {
		return nil, ErrAccountNotExist
	}
	acc, err := lumpb.DecodeAccount(b)
	if err != nil {
		return nil, fmt.Errorf("account %s decode failed: %v", accountID, err)
	}

	// cache the account
	am.accounts.Add(accountID, acc)
	accCopy := pb.Clone(acc)

	return accCopy.(*lumpb.Account), nil
}

// Update account information. The cache entry is invalidated
// instead of refreshed so that a following rollback of the db
// transaction cannot leave a stale copy behind.
func (am *Manager) SaveAccount(putter db.Putter, acc *lumpb.Account) error {
	accb, err := lumpb.Encode(acc)
	if err != nil {
		return fmt.Errorf("encode account failed: %v", err)
	}

	err = putter.Put(am.bucket, []byte(acc.AccountID), accb)
	if err != nil {
		return fmt.Errorf("save account in db failed: %v", err)
	}

	am.accounts.Remove(acc.AccountID)

	return nil
}

// Add balance to account and check balance overflow.
func (am *Manager) AddBalance(acc *lumpb.Account, balance int64) error {
	if balance < 0 || acc.Balance > math.MaxInt64-balance {
		return ErrBalanceOverflow
	}

	acc.Balance += balance

	return nil
}

// Subtract balance from account and check balance underflow. The
// reserved balance of the owned entries cannot be spent unless the
// entries are sponsored by another account.
func (am *Manager) SubBalance(acc *lumpb.Account, balance int64) error {
	reserve := am.baseReserve * int64(acc.EntryCount)
	if acc.Sponsor != "" {
		reserve = 0
	}
	if acc.Balance-reserve < balance {
		return ErrBalanceUnderflow
	}

	acc.Balance -= balance

	return nil
}

// Add or update a signer of the account, a zero weight
// removes the signer.
func (am *Manager) UpdateSigner(acc *lumpb.Account, signer *lumpb.Signer) error {
	if signer.Weight > MaxWeight {
		return ErrInvalidWeight
	}

	for i, s := range acc.Signers {
		if s.SignerID != signer.SignerID {
			continue
		}
		if signer.Weight == 0 {
			acc.Signers = append(acc.Signers[:i], acc.Signers[i+1:]...)
		} else {
			s.Weight = signer.Weight
		}
		return nil
	}

	if signer.Weight == 0 {
		// removing a nonexistent signer is a noop
		return nil
	}
	if len(acc.Signers) >= MaxSigners {
		return ErrTooManySigners
	}
	acc.Signers = append(acc.Signers, signer)

	return nil
}

// Update the threshold levels of the account.
func (am *Manager) SetThresholds(acc *lumpb.Account, t *lumpb.Thresholds) error {
	if t.Low > MaxWeight || t.Medium > MaxWeight || t.High > MaxWeight {
		return ErrInvalidThreshold
	}
	acc.Thresholds = &lumpb.Thresholds{Low: t.Low, Medium: t.Medium, High: t.High}
	return nil
}

// Update the master key weight of the account.
func (am *Manager) SetMasterWeight(acc *lumpb.Account, weight uint32) error {
	if weight > MaxWeight {
		return ErrInvalidWeight
	}
	acc.MasterWeight = weight
	return nil
}

// Create a new trust for issued asset.
func (am *Manager) CreateTrust(putter db.Putter, accountID string, asset *lumpb.Asset, limit int64) error {
	// self-trust is not necessary
	if accountID == asset.Issuer {
		return nil
	}

	trust := &lumpb.Trust{
		AccountID:  accountID,
		Asset:      asset,
		Balance:    0,
		Limit:      limit,
		Authorized: 1,
	}

	trustb, err := lumpb.Encode(trust)
	if err != nil {
		return fmt.Errorf("encode trust failed: %v", err)
	}

	err = putter.Put(am.bucket, trustKey(accountID, asset), trustb)
	if err != nil {
		return fmt.Errorf("save trust in db failed: %v", err)
	}

	return nil
}

// Get trust information. The issuer implicitly trusts its own
// asset without bound.
func (am *Manager) GetTrust(getter db.Getter, accountID string, asset *lumpb.Asset) (*lumpb.Trust, error) {
	if accountID == asset.Issuer {
		tst := &lumpb.Trust{
			AccountID:  accountID,
			Asset:      asset,
			Balance:    math.MaxInt64,
			Limit:      math.MaxInt64,
			Authorized: 1,
		}
		return tst, nil
	}

	b, err := getter.Get(am.bucket, trustKey(accountID, asset))
	if err != nil {
		return nil, fmt.Errorf("get trust from db failed: %v", err)
	}
	if b == nil {
		return nil, ErrTrustNotExist
	}

	trust, err := lumpb.DecodeTrust(b)
	if err != nil {
		return nil, fmt.Errorf("decode trust failed: %v", err)
	}

	return trust, nil
}

// Update trust information.
func (am *Manager) SaveTrust(putter db.Putter, trust *lumpb.Trust) error {
	trustb, err := lumpb.Encode(trust)
	if err != nil {
		return fmt.Errorf("encode trust failed: %v", err)
	}

	err = putter.Put(am.bucket, trustKey(trust.AccountID, trust.Asset), trustb)
	if err != nil {
		return fmt.Errorf("save trust in db failed: %v", err)
	}

	return nil
}

// Delete the trust of the account to the asset.
func (am *Manager) DeleteTrust(deleter db.Deleter, accountID string, asset *lumpb.Asset) error {
	err := deleter.Delete(am.bucket, trustKey(accountID, asset))
	if err != nil {
		return fmt.Errorf("delete trust in db failed: %v", err)
	}
	return nil
}

// Add balance to the trust and check the limit.
func (am *Manager) AddTrustBalance(trust *lumpb.Trust, balance int64) error {
	if balance < 0 || trust.Balance > math.MaxInt64-balance {
		return ErrBalanceOverflow
	}
	if trust.Balance+balance > trust.Limit {
		return ErrBalanceOverflow
	}

	trust.Balance += balance

	return nil
}

// Subtract balance from the trust and check balance underflow.
func (am *Manager) SubTrustBalance(trust *lumpb.Trust, balance int64) error {
	if trust.Balance < balance {
		return ErrBalanceUnderflow
	}

	trust.Balance -= balance

	return nil
}

// construct db key of the trust
func trustKey(accountID string, asset *lumpb.Asset) []byte {
	key := []byte(accountID)
	key = append(key, '/')
	key = append(key, []byte(asset.AssetName)...)
	key = append(key, '/')
	key = append(key, []byte(asset.Issuer)...)
	return key
}
