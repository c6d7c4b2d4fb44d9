package binary

import (
	"bytes"
	"crypto/sha256"
	"fmt"
)

const DiscriminatorSize = 8

// Discriminator is the 8 byte type tag that prefixes Anchor accounts,
// instructions and events.
type Discriminator [DiscriminatorSize]byte

func AccountDiscriminator(name string) Discriminator {
	return hashDiscriminator("account:" + name)
}

// InstructionDiscriminator takes the snake_case instruction name.
func InstructionDiscriminator(name string) Discriminator {
	return hashDiscriminator("global:" + name)
}

func EventDiscriminator(name string) Discriminator {
	return hashDiscriminator("event:" + name)
}

func hashDiscriminator(preimage string) Discriminator {
	var d Discriminator
	h := sha256.Sum256([]byte(preimage))
	copy(d[:], h[:DiscriminatorSize])
	return d
}

// HasDiscriminator reports whether data starts with d.
func HasDiscriminator(data []byte, d Discriminator) bool {
	return len(data) >= DiscriminatorSize && bytes.Equal(data[:DiscriminatorSize], d[:])
}

func (d Discriminator) String() string {
	return fmt.Sprintf("%x", d[:])
}
