package out

// Countdown is the slice of the countdown engine a button activation drives.
type Countdown interface {
	Interrupt()
	Start()
	Zero()
}
