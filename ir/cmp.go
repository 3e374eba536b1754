package ir

// CmpPredicate identifies the comparison performed by a cmp instruction.
// Grounded on NIR_CMP_PREDICATE
// (original_source/nir/include/netuno/nir/instruction.h).
type CmpPredicate int

const (
	FCmpEQ CmpPredicate = iota
	FCmpGT
	FCmpGE
	FCmpLT
	FCmpLE
	FCmpNE
	FCmpOrdered
	FCmpUnordered

	ICmpEQ
	ICmpNE
	ICmpUGT
	ICmpUGE
	ICmpULT
	ICmpULE
	ICmpSGT
	ICmpSGE
	ICmpSLT
	ICmpSLE
)

const (
	icmpFirst = ICmpEQ
	icmpLast  = ICmpSLE
	fcmpFirst = FCmpEQ
	fcmpLast  = FCmpUnordered
)

// IsIntPredicate reports whether p compares integers.
func IsIntPredicate(p CmpPredicate) bool { return p >= icmpFirst && p <= icmpLast }

// IsFPPredicate reports whether p compares floats.
func IsFPPredicate(p CmpPredicate) bool { return p >= fcmpFirst && p <= fcmpLast }

// IsSigned reports whether p is a signed integer predicate.
func IsSigned(p CmpPredicate) bool {
	switch p {
	case ICmpSGT, ICmpSGE, ICmpSLT, ICmpSLE:
		return true
	default:
		return false
	}
}

// IsUnsigned reports whether p is an unsigned integer predicate.
func IsUnsigned(p CmpPredicate) bool {
	switch p {
	case ICmpUGT, ICmpUGE, ICmpULT, ICmpULE:
		return true
	default:
		return false
	}
}

// IsStrictPredicate reports whether p is false when its operands are equal.
func IsStrictPredicate(p CmpPredicate) bool {
	switch p {
	case ICmpUGT, ICmpULT, ICmpSGT, ICmpSLT, FCmpGT, FCmpLT:
		return true
	default:
		return false
	}
}

// IsEquality reports whether p is an (in)equality predicate.
func IsEquality(p CmpPredicate) bool {
	return p == ICmpEQ || p == ICmpNE || p == FCmpEQ || p == FCmpNE
}

// IsRelational reports whether p is not an (in)equality predicate.
func IsRelational(p CmpPredicate) bool { return !IsEquality(p) }

// IsTrueWhenEqual reports whether p holds when comparing a value with
// itself.
func IsTrueWhenEqual(p CmpPredicate) bool {
	switch p {
	case ICmpEQ, ICmpUGE, ICmpULE, ICmpSGE, ICmpSLE, FCmpEQ, FCmpGE, FCmpLE, FCmpOrdered:
		return true
	default:
		return false
	}
}

// IsFalseWhenEqual reports whether p never holds when comparing a value
// with itself.
func IsFalseWhenEqual(p CmpPredicate) bool {
	return !IsTrueWhenEqual(p) && p != FCmpUnordered
}

// InversePredicate returns the logical negation of p (EQ -> NE, GT -> LE,
// ...).
func InversePredicate(p CmpPredicate) CmpPredicate {
	switch p {
	case FCmpEQ:
		return FCmpNE
	case FCmpNE:
		return FCmpEQ
	case FCmpGT:
		return FCmpLE
	case FCmpLE:
		return FCmpGT
	case FCmpGE:
		return FCmpLT
	case FCmpLT:
		return FCmpGE
	case FCmpOrdered:
		return FCmpUnordered
	case FCmpUnordered:
		return FCmpOrdered
	case ICmpEQ:
		return ICmpNE
	case ICmpNE:
		return ICmpEQ
	case ICmpUGT:
		return ICmpULE
	case ICmpULE:
		return ICmpUGT
	case ICmpUGE:
		return ICmpULT
	case ICmpULT:
		return ICmpUGE
	case ICmpSGT:
		return ICmpSLE
	case ICmpSLE:
		return ICmpSGT
	case ICmpSGE:
		return ICmpSLT
	case ICmpSLT:
		return ICmpSGE
	default:
		return p
	}
}

// StrictPredicate returns the strict version of a non-strict predicate
// (GE -> GT, LE -> LT, ...), or p unchanged if it has none.
func StrictPredicate(p CmpPredicate) CmpPredicate {
	switch p {
	case ICmpUGE:
		return ICmpUGT
	case ICmpULE:
		return ICmpULT
	case ICmpSGE:
		return ICmpSGT
	case ICmpSLE:
		return ICmpSLT
	case FCmpGE:
		return FCmpGT
	case FCmpLE:
		return FCmpLT
	default:
		return p
	}
}

// NonStrictPredicate returns the non-strict version of a strict
// predicate (GT -> GE, LT -> LE, ...), or p unchanged if it has none.
func NonStrictPredicate(p CmpPredicate) CmpPredicate {
	switch p {
	case ICmpUGT:
		return ICmpUGE
	case ICmpULT:
		return ICmpULE
	case ICmpSGT:
		return ICmpSGE
	case ICmpSLT:
		return ICmpSLE
	case FCmpGT:
		return FCmpGE
	case FCmpLT:
		return FCmpLE
	default:
		return p
	}
}

// SignedPredicate returns the signed version of an unsigned integer
// predicate.
func SignedPredicate(p CmpPredicate) CmpPredicate {
	switch p {
	case ICmpULT:
		return ICmpSLT
	case ICmpULE:
		return ICmpSLE
	case ICmpUGT:
		return ICmpSGT
	case ICmpUGE:
		return ICmpSGE
	default:
		return p
	}
}

// UnsignedPredicate returns the unsigned version of a signed integer
// predicate.
func UnsignedPredicate(p CmpPredicate) CmpPredicate {
	switch p {
	case ICmpSLT:
		return ICmpULT
	case ICmpSLE:
		return ICmpULE
	case ICmpSGT:
		return ICmpUGT
	case ICmpSGE:
		return ICmpUGE
	default:
		return p
	}
}

// IsImpliedTrueByMatchingCmp reports whether p1 holding on a pair of
// operands forces p2 to hold on the same pair.
func IsImpliedTrueByMatchingCmp(p1, p2 CmpPredicate) bool {
	if p1 == p2 {
		return true
	}
	switch p1 {
	case ICmpEQ:
		return p2 == ICmpUGE || p2 == ICmpULE || p2 == ICmpSGE || p2 == ICmpSLE
	case ICmpSGT:
		return p2 == ICmpSGE || p2 == ICmpNE
	case ICmpSLT:
		return p2 == ICmpSLE || p2 == ICmpNE
	case ICmpUGT:
		return p2 == ICmpUGE || p2 == ICmpNE
	case ICmpULT:
		return p2 == ICmpULE || p2 == ICmpNE
	}
	return false
}

// IsImpliedFalseByMatchingCmp reports whether p1 holding on a pair of
// operands forces p2 to be false on the same pair.
func IsImpliedFalseByMatchingCmp(p1, p2 CmpPredicate) bool {
	return IsImpliedTrueByMatchingCmp(p1, InversePredicate(p2))
}

var predicateName = map[CmpPredicate]string{
	FCmpEQ: "fcmp.eq", FCmpGT: "fcmp.gt", FCmpGE: "fcmp.ge", FCmpLT: "fcmp.lt",
	FCmpLE: "fcmp.le", FCmpNE: "fcmp.ne", FCmpOrdered: "fcmp.ord", FCmpUnordered: "fcmp.uno",
	ICmpEQ: "icmp.eq", ICmpNE: "icmp.ne",
	ICmpUGT: "icmp.ugt", ICmpUGE: "icmp.uge", ICmpULT: "icmp.ult", ICmpULE: "icmp.ule",
	ICmpSGT: "icmp.sgt", ICmpSGE: "icmp.sge", ICmpSLT: "icmp.slt", ICmpSLE: "icmp.sle",
}

func (p CmpPredicate) String() string {
	if name, ok := predicateName[p]; ok {
		return name
	}
	return "unknown"
}
