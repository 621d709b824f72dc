package build

import (
	"errors"
	"time"

	"github.com/luminet/go-luminet/crypto"
	"github.com/luminet/go-luminet/log"
	"github.com/luminet/go-luminet/lumpb"
)

var (
	ErrNilTx = errors.New("tx is nil")
)

type AssetType uint8

const (
	// The native asset.
	NATIVE AssetType = iota
	// The custom asset.
	CUSTOM
)

// Asset contains the required information of working with an asset.
type Asset struct {
	AssetType AssetType
	AssetName string
	Issuer    string
}

func (a *Asset) validate() error {
	if a == nil {
		return errors.New("asset is nil")
	}
	switch a.AssetType {
	case NATIVE:
		return nil
	case CUSTOM:
	default:
		return errors.New("invalid asset type")
	}
	if len(a.AssetName) == 0 || len(a.AssetName) > 4 {
		return errors.New("invalid asset name length")
	}
	if !crypto.IsValidAccountKey(a.Issuer) {
		return errors.New("invalid asset issuer account key")
	}
	return nil
}

func (a *Asset) toPb() *lumpb.Asset {
	asset := &lumpb.Asset{
		AssetName: a.AssetName,
		Issuer:    a.Issuer,
	}
	switch a.AssetType {
	case NATIVE:
		asset.AssetType = lumpb.AssetType_NATIVE
	case CUSTOM:
		asset.AssetType = lumpb.AssetType_CUSTOM
	default:
		log.Fatal("unsupported asset type")
	}
	return asset
}

// TxMutator defines the method which all the transaction
// mutators should implement.
type TxMutator interface {
	Mutate(tx *lumpb.Tx) error
}

// AccountID sets the AccountID field in the Tx.
type AccountID struct {
	AccountID string
}

func (a *AccountID) validate() error {
	if a.AccountID == "" {
		return errors.New("empty account id")
	}
	if !crypto.IsValidAccountKey(a.AccountID) {
		return errors.New("invalid account key")
	}
	return nil
}

// Mutate changes the corresponding AccountID field of the Tx.
func (a *AccountID) Mutate(tx *lumpb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := a.validate(); err != nil {
		return err
	}
	tx.AccountID = a.AccountID

	return nil
}

// Note sets the Note field in the tx.
type Note struct {
	Note string
}

func (n *Note) validate() error {
	if len(n.Note) > 128 {
		return errors.New("note is too long")
	}
	return nil
}

// Mutate changes the corresponding Note field of the Tx.
func (n *Note) Mutate(tx *lumpb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := n.validate(); err != nil {
		return err
	}
	tx.Note = n.Note
	return nil
}

// SeqNum sets the SeqNum field in the tx.
type SeqNum struct {
	SeqNum uint64
}

func (s *SeqNum) validate() error {
	if s.SeqNum == 0 {
		return errors.New("seqnum is zero")
	}
	return nil
}

// Mutate changes the corresponding SeqNum field of the Tx.
func (s *SeqNum) Mutate(tx *lumpb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := s.validate(); err != nil {
		return err
	}
	tx.SeqNum = s.SeqNum
	return nil
}

// Fee computes the total fees for the Tx.
type Fee struct {
	BaseFee int64
}

func (f *Fee) validate() error {
	if f.BaseFee < 0 {
		return errors.New("base fee is negative")
	}
	return nil
}

// Mutate changes the corresponding Fee field of the Tx.
func (f *Fee) Mutate(tx *lumpb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := f.validate(); err != nil {
		return err
	}

	tx.Fee = f.BaseFee * int64(len(tx.OpList))

	return nil
}

// Timeout sets the TimeBounds field in the tx so that the tx
// expires after the supplied duration.
type Timeout struct {
	Timeout time.Duration
}

func (to *Timeout) validate() error {
	if to.Timeout <= 0 {
		return errors.New("non-positive timeout")
	}
	return nil
}

// Mutate changes the corresponding TimeBounds field of the Tx.
func (to *Timeout) Mutate(tx *lumpb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := to.validate(); err != nil {
		return err
	}
	tx.TimeBounds = &lumpb.TimeBounds{
		MaxTime: time.Now().Add(to.Timeout).Unix(),
	}
	return nil
}

// TimeBounds sets the TimeBounds field in the tx with explicit
// unix timestamps.
type TimeBounds struct {
	MinTime int64
	MaxTime int64
}

func (tb *TimeBounds) validate() error {
	if tb.MinTime < 0 || tb.MaxTime < 0 {
		return errors.New("negative time bound")
	}
	if tb.MaxTime > 0 && tb.MaxTime < tb.MinTime {
		return errors.New("max time before min time")
	}
	return nil
}

// Mutate changes the corresponding TimeBounds field of the Tx.
func (tb *TimeBounds) Mutate(tx *lumpb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := tb.validate(); err != nil {
		return err
	}
	tx.TimeBounds = &lumpb.TimeBounds{MinTime: tb.MinTime, MaxTime: tb.MaxTime}
	return nil
}

// CreateAccount adds a CreateAccount op to the OpList field of tx.
type CreateAccount struct {
	AccountID string
	Balance   int64
	SrcID     string
}

func (ca *CreateAccount) validate() error {
	if len(ca.AccountID) == 0 {
		return errors.New("empty account id")
	}
	if ca.Balance <= 0 {
		return errors.New("non-positive init balance")
	}
	if !crypto.IsValidAccountKey(ca.AccountID) {
		return errors.New("invalid account key")
	}
	if ca.SrcID != "" && !crypto.IsValidAccountKey(ca.SrcID) {
		return errors.New("invalid source account key")
	}
	return nil
}

// Mutate appends a CreateAccount op to the OpList.
func (ca *CreateAccount) Mutate(tx *lumpb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := ca.validate(); err != nil {
		return err
	}

	tx.OpList = append(tx.OpList, &lumpb.Op{
		OpType:    lumpb.OpType_CREATE_ACCOUNT,
		AccountID: ca.SrcID,
		Op: &lumpb.Op_CreateAccount{
			CreateAccount: &lumpb.CreateAccountOp{
				AccountID: ca.AccountID,
				Balance:   ca.Balance,
			},
		},
	})

	return nil
}

// Payment adds a Payment operation to the OpList field of Tx.
type Payment struct {
	AccountID string
	Asset     *Asset
	Amount    int64
	SrcID     string
}

func (p *Payment) validate() error {
	if p.Amount <= 0 {
		return errors.New("non-positive payment amount")
	}
	if !crypto.IsValidAccountKey(p.AccountID) {
		return errors.New("invalid account key")
	}
	if p.SrcID != "" && !crypto.IsValidAccountKey(p.SrcID) {
		return errors.New("invalid source account key")
	}
	if err := p.Asset.validate(); err != nil {
		return err
	}
	return nil
}

// Mutate appends a Payment operation to the OpList of the Tx.
func (p *Payment) Mutate(tx *lumpb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := p.validate(); err != nil {
		return err
	}

	tx.OpList = append(tx.OpList, &lumpb.Op{
		OpType:    lumpb.OpType_PAYMENT,
		AccountID: p.SrcID,
		Op: &lumpb.Op_Payment{
			Payment: &lumpb.PaymentOp{
				AccountID: p.AccountID,
				Asset:     p.Asset.toPb(),
				Amount:    p.Amount,
			},
		},
	})

	return nil
}

// Trust adds a Trust operation to the OpList field of the Tx.
type Trust struct {
	Asset *Asset
	Limit int64
	SrcID string
}

func (t *Trust) validate() error {
	if t.Limit < 0 {
		return errors.New("negative trust limit")
	}
	if t.SrcID != "" && !crypto.IsValidAccountKey(t.SrcID) {
		return errors.New("invalid source account key")
	}
	if err := t.Asset.validate(); err != nil {
		return err
	}
	if t.Asset.AssetType == NATIVE {
		return errors.New("cannot trust the native asset")
	}
	return nil
}

// Mutate appends a Trust operation to the OpList of the Tx.
func (t *Trust) Mutate(tx *lumpb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := t.validate(); err != nil {
		return err
	}

	tx.OpList = append(tx.OpList, &lumpb.Op{
		OpType:    lumpb.OpType_TRUST,
		AccountID: t.SrcID,
		Op: &lumpb.Op_Trust{
			Trust: &lumpb.TrustOp{
				Asset: t.Asset.toPb(),
				Limit: t.Limit,
			},
		},
	})

	return nil
}

// Signer contains the information of an extra account signer.
type Signer struct {
	SignerID string
	Weight   uint32
}

// Thresholds contains the three operation threshold values
// of an account.
type Thresholds struct {
	Low    uint32
	Medium uint32
	High   uint32
}

// SetOptions adds a SetOptions operation to the OpList field
// of the Tx. Zero-value fields are left untouched by the op.
type SetOptions struct {
	Signer          *Signer
	Thresholds      *Thresholds
	MasterWeight    uint32
	SetMasterWeight bool
	SrcID           string
}

func (so *SetOptions) validate() error {
	if so.Signer == nil && so.Thresholds == nil && !so.SetMasterWeight {
		return errors.New("empty set options")
	}
	if so.Signer != nil && !crypto.IsValidAccountKey(so.Signer.SignerID) {
		return errors.New("invalid signer account key")
	}
	if so.SrcID != "" && !crypto.IsValidAccountKey(so.SrcID) {
		return errors.New("invalid source account key")
	}
	return nil
}

// Mutate appends a SetOptions operation to the OpList of the Tx.
func (so *SetOptions) Mutate(tx *lumpb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := so.validate(); err != nil {
		return err
	}

	op := &lumpb.SetOptionsOp{
		MasterWeight:    so.MasterWeight,
		SetMasterWeight: so.SetMasterWeight,
	}
	if so.Signer != nil {
		op.Signer = &lumpb.Signer{
			SignerID: so.Signer.SignerID,
			Weight:   so.Signer.Weight,
		}
	}
	if so.Thresholds != nil {
		op.Thresholds = &lumpb.Thresholds{
			Low:    so.Thresholds.Low,
			Medium: so.Thresholds.Medium,
			High:   so.Thresholds.High,
		}
	}

	tx.OpList = append(tx.OpList, &lumpb.Op{
		OpType:    lumpb.OpType_SET_OPTIONS,
		AccountID: so.SrcID,
		Op:        &lumpb.Op_SetOptions{SetOptions: op},
	})

	return nil
}

// AllowTrust adds an AllowTrust operation to the OpList field
// of the Tx.
type AllowTrust struct {
	AccountID string
	Asset     *Asset
	Authorize bool
	SrcID     string
}

func (at *AllowTrust) validate() error {
	if !crypto.IsValidAccountKey(at.AccountID) {
		return errors.New("invalid account key")
	}
	if at.SrcID != "" && !crypto.IsValidAccountKey(at.SrcID) {
		return errors.New("invalid source account key")
	}
	if err := at.Asset.validate(); err != nil {
		return err
	}
	if at.Asset.AssetType == NATIVE {
		return errors.New("cannot authorize the native asset")
	}
	return nil
}

// Mutate appends an AllowTrust operation to the OpList of the Tx.
func (at *AllowTrust) Mutate(tx *lumpb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := at.validate(); err != nil {
		return err
	}

	tx.OpList = append(tx.OpList, &lumpb.Op{
		OpType:    lumpb.OpType_ALLOW_TRUST,
		AccountID: at.SrcID,
		Op: &lumpb.Op_AllowTrust{
			AllowTrust: &lumpb.AllowTrustOp{
				AccountID: at.AccountID,
				Asset:     at.Asset.toPb(),
				Authorize: at.Authorize,
			},
		},
	})

	return nil
}

// Clawback adds a Clawback operation to the OpList field of the Tx.
type Clawback struct {
	AccountID string
	Asset     *Asset
	Amount    int64
	SrcID     string
}

func (cb *Clawback) validate() error {
	if cb.Amount <= 0 {
		return errors.New("non-positive clawback amount")
	}
	if !crypto.IsValidAccountKey(cb.AccountID) {
		return errors.New("invalid account key")
	}
	if cb.SrcID != "" && !crypto.IsValidAccountKey(cb.SrcID) {
		return errors.New("invalid source account key")
	}
	if err := cb.Asset.validate(); err != nil {
		return err
	}
	if cb.Asset.AssetType == NATIVE {
		return errors.New("cannot clawback the native asset")
	}
	return nil
}

// Mutate appends a Clawback operation to the OpList of the Tx.
func (cb *Clawback) Mutate(tx *lumpb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := cb.validate(); err != nil {
		return err
	}

	tx.OpList = append(tx.OpList, &lumpb.Op{
		OpType:    lumpb.OpType_CLAWBACK,
		AccountID: cb.SrcID,
		Op: &lumpb.Op_Clawback{
			Clawback: &lumpb.ClawbackOp{
				AccountID: cb.AccountID,
				Asset:     cb.Asset.toPb(),
				Amount:    cb.Amount,
			},
		},
	})

	return nil
}

// BeginSponsor adds a BeginSponsor operation to the OpList field
// of the Tx.
type BeginSponsor struct {
	AccountID string
	SrcID     string
}

func (bs *BeginSponsor) validate() error {
	if !crypto.IsValidAccountKey(bs.AccountID) {
		return errors.New("invalid account key")
	}
	if bs.SrcID != "" && !crypto.IsValidAccountKey(bs.SrcID) {
		return errors.New("invalid source account key")
	}
	return nil
}

// Mutate appends a BeginSponsor operation to the OpList of the Tx.
func (bs *BeginSponsor) Mutate(tx *lumpb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := bs.validate(); err != nil {
		return err
	}

	tx.OpList = append(tx.OpList, &lumpb.Op{
		OpType:    lumpb.OpType_BEGIN_SPONSOR,
		AccountID: bs.SrcID,
		Op: &lumpb.Op_BeginSponsor{
			BeginSponsor: &lumpb.BeginSponsorOp{
				AccountID: bs.AccountID,
			},
		},
	})

	return nil
}

// EndSponsor adds an EndSponsor operation to the OpList field
// of the Tx. The op source is the sponsored account.
type EndSponsor struct {
	SrcID string
}

func (es *EndSponsor) validate() error {
	if es.SrcID != "" && !crypto.IsValidAccountKey(es.SrcID) {
		return errors.New("invalid source account key")
	}
	return nil
}

// Mutate appends an EndSponsor operation to the OpList of the Tx.
func (es *EndSponsor) Mutate(tx *lumpb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := es.validate(); err != nil {
		return err
	}

	tx.OpList = append(tx.OpList, &lumpb.Op{
		OpType:    lumpb.OpType_END_SPONSOR,
		AccountID: es.SrcID,
		Op:        &lumpb.Op_EndSponsor{EndSponsor: &lumpb.EndSponsorOp{}},
	})

	return nil
}
