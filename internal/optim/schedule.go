package optim

// Schedule maps an epoch index to a learning rate.
type Schedule interface {
	LR(epoch int) float64
}

// Constant is a fixed learning rate.
type Constant float64

// LR implements Schedule.
func (c Constant) LR(int) float64 {
	return float64(c)
}

// LinearDecay interpolates from Start down toward End over Steps epochs:
//
//	lr(epoch) = Start - (Start-End) * epoch / Steps
//
// With Start=1, End=0.1, Steps=100 this is micrograd's 1.0 - 0.9*epoch/100.
// The rate is held at End past Steps.
type LinearDecay struct {
	Start float64
	End   float64
	Steps int
}

// LR implements Schedule.
func (d LinearDecay) LR(epoch int) float64 {
	if d.Steps <= 0 {
		return d.Start
	}
	if epoch >= d.Steps {
		return d.End
	}
	return d.Start - (d.Start-d.End)*float64(epoch)/float64(d.Steps)
}
