package marinade

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

const TicketAccountDataSize = (8 + // discriminator
	32 + // state_address
	32 + // beneficiary
	8 + // lamports_amount
	8) // created_epoch

const (
	TicketAccountDataStateOffset       = 8
	TicketAccountDataBeneficiaryOffset = 40
)

var TicketAccountDataDiscriminator = binary.Discriminator{133, 77, 18, 98, 211, 1, 231, 3}

// TicketAccountData is a delayed unstake ticket created by order_unstake and
// redeemed by claim once the unstake has cooled down.
type TicketAccountData struct {
	StateAddress   ed25519.PublicKey
	Beneficiary    ed25519.PublicKey
	LamportsAmount uint64
	CreatedEpoch   uint64
}

func (obj *TicketAccountData) Size() int {
	return TicketAccountDataSize
}

func (obj *TicketAccountData) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteDiscriminator(TicketAccountDataDiscriminator); err != nil {
		return err
	}
	if err := e.WriteKey(obj.StateAddress); err != nil {
		return err
	}
	if err := e.WriteKey(obj.Beneficiary); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.LamportsAmount); err != nil {
		return err
	}
	return e.WriteUint64(obj.CreatedEpoch)
}

func (obj *TicketAccountData) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if err = d.ReadDiscriminator(TicketAccountDataDiscriminator); err != nil {
		return err
	}
	if obj.StateAddress, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.Beneficiary, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.LamportsAmount, err = d.ReadUint64(); err != nil {
		return err
	}
	obj.CreatedEpoch, err = d.ReadUint64()
	return err
}

func (obj *TicketAccountData) Unmarshal(data []byte) error {
	_, err := binary.Decode(data, 0, obj)
	return err
}

// IsDue reports whether the ticket's epoch wait has passed. The program
// additionally requires part of the following epoch to elapse before a claim
// succeeds.
func (obj *TicketAccountData) IsDue(currentEpoch uint64) bool {
	return currentEpoch > obj.CreatedEpoch
}

func (obj *TicketAccountData) String() string {
	return fmt.Sprintf(
		"TicketAccountData{state_address=%s,beneficiary=%s,lamports_amount=%d,created_epoch=%d}",
		base58.Encode(obj.StateAddress),
		base58.Encode(obj.Beneficiary),
		obj.LamportsAmount,
		obj.CreatedEpoch,
	)
}
