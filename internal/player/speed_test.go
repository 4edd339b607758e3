package player_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/player"
)

var _ = DescribeTable("TickFor",
	func(multiplier int, want time.Duration) {
		Expect(player.TickFor(multiplier)).To(Equal(want))
		Expect(player.TickFor(multiplier)).To(BeNumerically(">", 0))
	},
	Entry("clamps below", 0, 1600*time.Millisecond),
	Entry("1x", 1, 1600*time.Millisecond),
	Entry("2x", 2, 800*time.Millisecond),
	Entry("3x", 3, 1600*time.Millisecond/3),
	Entry("4x", 4, 400*time.Millisecond),
	Entry("clamps above", 9, 400*time.Millisecond),
)

var _ = Describe("MultiplierFor", func() {
	It("inverts TickFor", func() {
		for m := player.MinMultiplier; m <= player.MaxMultiplier; m++ {
			Expect(player.MultiplierFor(player.TickFor(m))).To(Equal(m))
		}
	})

	It("clamps out-of-range durations", func() {
		Expect(player.MultiplierFor(10 * time.Second)).To(Equal(player.MinMultiplier))
		Expect(player.MultiplierFor(time.Millisecond)).To(Equal(player.MaxMultiplier))
		Expect(player.MultiplierFor(0)).To(Equal(player.MaxMultiplier))
	})
})
