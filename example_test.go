package guuid_test

import (
	"errors"
	"fmt"

	"github.com/Lzww0608/guuid/v2"
)

func ExampleParse() {
	id, err := guuid.Parse("017F22E2-79B0-7CC3-98C4-DC0C0C07398F")
	if err != nil {
		panic(err)
	}
	v, ok := id.Type()
	fmt.Println(id)
	fmt.Println(v, ok)
	fmt.Println(id.Timestamp())
	// Output:
	// 017f22e2-79b0-7cc3-98c4-dc0c0c07398f
	// time-based (Unix epoch) true
	// 1645557742000
}

func ExampleParse_error() {
	_, err := guuid.Parse("0011223-4455-4677-8899-aabbccddeeff")

	var ferr *guuid.FormatError
	if errors.As(err, &ferr) {
		fmt.Println(ferr.Index, string(ferr.Char))
	}
	fmt.Println(errors.Is(err, guuid.ErrInvalidFormat))
	// Output:
	// 7 -
	// true
}

func ExampleUUID_Type() {
	for _, s := range []string{
		"00000000-0000-0000-0000-000000000000",
		"00112233-4455-1677-8899-aabbccddeeff",
		"ffffffff-ffff-ffff-ffff-ffffffffffff",
	} {
		v, ok := guuid.MustParse(s).Type()
		fmt.Println(v, ok)
	}
	// Output:
	// unknown true
	// time-based true
	// unknown false
}

func ExampleFromBytesAt() {
	buf := make([]byte, 20)
	_, err := guuid.FromBytesAt(buf, 10)
	fmt.Println(errors.Is(err, guuid.ErrInvalidArgument))

	id := guuid.MustParse("c232ab00-9414-11ec-b3c8-9f6bdeced846")
	if err := id.PutBytes(buf, 4); err != nil {
		panic(err)
	}
	same, _ := guuid.FromBytesAt(buf, 4)
	fmt.Println(same == id)
	// Output:
	// true
	// true
}

func ExampleConstruct() {
	// a generator fills every bit, then stamps version and variant
	id := guuid.Construct(guuid.VersionRandom, 0xffffffffffffffff, 0x0123456789abcdef)
	fmt.Println(id)
	fmt.Println(id.Variant())
	// Output:
	// ffffffff-ffff-4fff-8123-456789abcdef
	// RFC4122
}
