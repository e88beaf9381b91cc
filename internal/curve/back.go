package curve

// BackIn pulls back before accelerating towards the target.
func BackIn(t, b, c, d float64) float64 {
	s := backOvershoot
	t /= d
	return c*t*t*((s+1)*t-s) + b
}

// BackOut overshoots the target and settles back onto it.
func BackOut(t, b, c, d float64) float64 {
	s := backOvershoot
	t = t/d - 1
	return c*(t*t*((s+1)*t+s)+1) + b
}

// BackInOut pulls back at the start and overshoots at the end.
func BackInOut(t, b, c, d float64) float64 {
	s := backOvershoot * backInOutOvershoot
	t = t / d * inOutScale
	if t < inOutHalf {
		return c/halfChange*(t*t*((s+1)*t-s)) + b
	}
	t -= inOutOffset
	return c/halfChange*(t*t*((s+1)*t+s)+2) + b
}
