package solver

import "math"

var posInf = math.Inf(1)
