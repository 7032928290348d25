package chord

// catalogEntries is the chord-type table in declaration order. Entries up to
// and including standardLast form the standard catalog.
var catalogEntries = []entry{
	{"major", "", "M3 P5"},
	{"minor", "m", "m3 P5"},
	{"dim", "°", "m3 d5"},
	{"flat5", "(♭5)", "M3 d5"},
	{"aug", "⁺", "M3 A5"},
	{"sus2", "sus2", "M2 P5"},
	{"sus4", "sus4", "P4 P5"},
	{"maj6", "6", "M3 P5 M6"},
	{"min6", "m6", "m3 P5 M6"},
	{"sus2_add13", "sus2(add13)", "M2 P5 M13"},
	{"sus4_add13", "sus4(add13)", "P4 P5 M13"},
	{"sus2_addFlat13", "sus2(add♭13)", "M2 P5 m13"},
	{"sus4_addFlat13", "sus4(add♭13)", "P4 P5 m13"},
	{"maj7", "maj7", "M3 P5 M7"},
	{"dom7", "7", "M3 P5 m7"},
	{"min7", "m7", "m3 P5 m7"},
	{"halfDim7", "ø7", "m3 d5 m7"},
	{"dim7", "°7", "m3 d5 d7"},
	{"dom7_sus2", "7sus2", "M2 P5 m7"},
	{"dom7_sus4", "7sus4", "P4 P5 m7"},
	{"maj7_sharp5", "maj7(♯5)", "M3 A5 M7"},
	{"min_maj7", "mMaj7", "m3 P5 M7"},
	{"maj7_flat5", "maj7(♭5)", "M3 d5 M7"},
	{"dom7_flat5", "7(♭5)", "M3 d5 m7"},
	{"dom7_sharp5", "7(♯5)", "M3 A5 m7"},
	{"maj9", "maj9", "M3 P5 M7 M9"},
	{"dom9", "9", "M3 P5 m7 M9"},
	{"min9", "m9", "m3 P5 m7 M9"},
	{"halfDim9", "ø9", "m3 d5 m7 M9"},
	{"halfDimFlat9", "ø7(♭9)", "m3 d5 m7 m9"},
	{"dim9", "°9", "m3 d5 d7 M9"},
	{"dimFlat9", "°(♭9)", "m3 d5 d7 m9"},
	{"dom9_sus4", "9sus4", "P4 P5 m7 M9"},
	{"dom7_flat9", "7(♭9)", "M3 P5 m7 m9"},
	{"dom7_sharp9", "7(♯9)", "M3 P5 m7 A9"},
	{"min_maj9", "mMaj9", "m3 P5 M7 M9"},
	{"min_maj_flat9", "mMaj(♭9)", "m3 P5 M7 m9"},
	{"min7_flat9", "m7(♭9)", "m3 P5 m7 m9"},
	{"maj_add9", "(add9)", "M3 P5 M9"},
	{"min_add9", "m(add9)", "m3 P5 M9"},
	{"dim_add9", "°(add9)", "m3 d5 M9"},
	{"aug_add9", "⁺(add9)", "M3 A5 M9"},
	{"maj_addFlat9", "(add♭9)", "M3 P5 m9"},
	{"min_addFlat9", "m(add♭9)", "m3 P5 m9"},
	{"dim_addFlat9", "°(add♭9)", "m3 d5 m9"},
	{"aug_addFlat9", "⁺(add♭9)", "M3 A5 m9"},
	{"maj_addSharp9", "(add♯9)", "M3 P5 A9"},
	{"min_addSharp9", "m(add♯9)", "m3 P5 A9"},
	{"dim_addSharp9", "°(add♯9)", "m3 d5 A9"},
	{"aug_addSharp9", "⁺(add♯9)", "M3 A5 A9"},
	{"maj_6_9", "6/9", "M3 P5 M6 M9"},
	{"maj9_sharp5", "maj9(♯5)", "M3 A5 M7 M9"},
	{"maj9_flat5", "maj9(♭5)", "M3 d5 M7 M9"},
	{"dom9_flat5", "9(♭5)", "M3 d5 m7 M9"},
	{"dom9_sharp5", "9(♯5)", "M3 A5 m7 M9"},
	{"maj11", "maj11", "M3 P5 M7 M9 P11"},
	{"dom11", "11", "M3 P5 m7 M9 P11"},
	{"min11", "m11", "m3 P5 m7 M9 P11"},
	{"halfDim11", "ø11", "m3 d5 m7 M9 P11"},
	{"dim11", "°11", "m3 d5 d7 M9 P11"},
	{"maj11_flat5", "maj11(♭5)", "M3 d5 M7 M9 P11"},
	{"maj11_sharp5", "maj11(♯5)", "M3 A5 M7 M9 P11"},
	{"dom11_flat5", "11(♭5)", "M3 d5 m7 M9 P11"},
	{"dom11_sharp5", "11(♯5)", "M3 A5 m7 M9 P11"},
	{"maj9_sharp11", "maj9(♯11)", "M3 P5 M7 M9 A11"},
	{"dom9_sharp11", "9(♯11)", "M3 P5 m7 M9 A11"},
	{"min9_sharp11", "m9(♯11)", "m3 P5 m7 M9 A11"},
	{"maj9_flat5_sharp11", "maj9(♭5)(♯11)", "M3 d5 M7 M9 A11"},
	{"maj9_sharp5_sharp11", "maj9(♯5)(♯11)", "M3 A5 M7 M9 A11"},
	{"dom9_flat5_sharp11", "9(♭5)(♯11)", "M3 d5 m7 M9 A11"},
	{"dom9_sharp5_sharp11", "9(♯5)(♯11)", "M3 A5 m7 M9 A11"},
	{"maj7_flat9_sharp11", "maj7(♭9)(♯11)", "M3 P5 M7 m9 A11"},
	{"dom7_flat9_sharp11", "7(♭9)(♯11)", "M3 P5 m7 m9 A11"},
	{"min7_flat9_sharp11", "m7(♭9)(♯11)", "m3 P5 m7 m9 A11"},
	{"dom7_sharp9_sharp11", "7(♯9)(♯11)", "M3 P5 m7 A9 A11"},
	{"min7_flat9_11", "m7(♭9)(11)", "m3 P5 m7 m9 P11"},
	{"maj7_add11", "maj7(add11)", "M3 P5 M7 P11"},
	{"maj7_addSharp11", "maj7(add♯11)", "M3 P5 M7 A11"},
	{"dom7_add11", "7(add11)", "M3 P5 m7 P11"},
	{"dom7_addSharp11", "7(add♯11)", "M3 P5 m7 A11"},
	{"min7_add11", "m7(add11)", "m3 P5 m7 P11"},
	{"min7_addSharp11", "m7(add♯11)", "m3 P5 m7 A11"},
	{"halfDim7_add11", "ø7(add11)", "m3 d5 m7 P11"},
	{"maj13", "maj13", "M3 P5 M7 M9 P11 M13"},
	{"dom13", "13", "M3 P5 m7 M9 P11 M13"},
	{"min13", "m13", "m3 P5 m7 M9 P11 M13"},
	{"halfDim13", "ø13", "m3 d5 m7 M9 P11 M13"},
	{"min13_flat5", "m13(♭5)", "m3 d5 m7 M9 P11 M13"},
	{"maj13_flat9", "maj13(♭9)", "M3 P5 M7 m9 P11 M13"},
	{"dom13_flat9", "13(♭9)", "M3 P5 m7 m9 P11 M13"},
	{"min13_flat9", "m13(♭9)", "m3 P5 m7 m9 P11 M13"},
	{"min13_flat5_flat9", "m13(♭5)(♭9)", "m3 d5 m7 m9 P11 M13"},
	{"maj13_sharp9", "maj13(♯9)", "M3 P5 M7 A9 P11 M13"},
	{"dom13_sharp9", "13(♯9)", "M3 P5 m7 A9 P11 M13"},
	{"min13_sharp9", "m13(♯9)", "m3 P5 m7 A9 P11 M13"},
	{"min13_flat5_sharp9", "m13(♭5)(♯9)", "m3 d5 m7 A9 P11 M13"},
	{"maj13_sharp11", "maj13(♯11)", "M3 P5 M7 M9 A11 M13"},
	{"dom13_sharp11", "13(♯11)", "M3 P5 m7 M9 A11 M13"},
	{"min13_sharp11", "m13(♯11)", "m3 P5 m7 M9 A11 M13"},
	{"maj7_flat13", "maj7(♭13)", "M3 P5 M7 M9 P11 m13"},
	{"dom7_flat13", "7(♭13)", "M3 P5 m7 M9 P11 m13"},
	{"min7_flat13", "m7(♭13)", "m3 P5 m7 M9 P11 m13"},
	{"halfDim7_flat13", "ø7(♭13)", "m3 d5 m7 M9 P11 m13"},
	{"maj7_flat9_flat13", "maj7(♭9)(♭13)", "M3 P5 M7 m9 P11 m13"},
	{"dom7_flat9_flat13", "7(♭9)(♭13)", "M3 P5 m7 m9 P11 m13"},
	{"min7_flat9_flat13", "m7(♭9)(♭13)", "m3 P5 m7 m9 P11 m13"},
	{"min7_flat5_flat9_flat13", "ø7(♭5)(♭9)(♭13)", "m3 d5 m7 m9 P11 m13"},
	{"maj7_sharp9_flat13", "maj7(♯9)(♭13)", "M3 P5 M7 A9 P11 m13"},
	{"dom7_sharp9_flat13", "7(♯9)(♭13)", "M3 P5 m7 A9 P11 m13"},
	{"min7_sharp9_flat13", "m7(♯9)(♭13)", "m3 P5 m7 A9 P11 m13"},
	{"min7_flat5_sharp9_flat13", "ø7(♭5)(♯9)(♭13)", "m3 d5 m7 A9 P11 m13"},
	{"maj7_flat9_sharp11_flat13", "maj7(♭9)(♯11)(♭13)", "M3 P5 M7 m9 A11 m13"},
	{"dom7_flat9_sharp11_flat13", "7(♭9)(♯11)(♭13)", "M3 P5 m7 m9 A11 m13"},
	{"min7_flat9_sharp11_flat13", "m7(♭9)(♯11)(♭13)", "m3 P5 m7 m9 A11 m13"},
	{"min7_flat5_flat9_sharp11_flat13", "ø7(♭5)(♭9)(♯11)(♭13)", "m3 d5 m7 m9 A11 m13"},
	{"maj7_sharp9_sharp11_flat13", "maj7(♯9)(♯11)(♭13)", "M3 P5 M7 A9 A11 m13"},
	{"dom7_sharp9_sharp11_flat13", "7(♯9)(♯11)(♭13)", "M3 P5 m7 A9 A11 m13"},
	{"min7_sharp9_sharp11_flat13", "m7(♯9)(♯11)(♭13)", "m3 P5 m7 A9 A11 m13"},
	{"min7_flat5_sharp9_sharp11_flat13", "ø7(♭5)(♯9)(♯11)(♭13)", "m3 d5 m7 A9 A11 m13"},
	{"maj7_add13", "maj7(add13)", "M3 P5 M7 M13"},
	{"dom7_add13", "7(add13)", "M3 P5 m7 M13"},
	{"min7_add13", "m7(add13)", "m3 P5 m7 M13"},
	{"halfDim7_add13", "ø7(add13)", "m3 d5 m7 M13"},
	{"maj7_addFlat13", "maj7(add♭13)", "M3 P5 M7 m13"},
	{"dom7_addFlat13", "7(add♭13)", "M3 P5 m7 m13"},
	{"min7_addFlat13", "m7(add♭13)", "m3 P5 m7 m13"},
	{"halfDim7_addFlat13", "ø7(add♭13)", "m3 d5 m7 m13"},
	{"maj7_add9_add13", "maj7(add9)(add13)", "M3 P5 M7 M9 M13"},
	{"maj7_addFlat9_add13", "maj7(add♭9)(add13)", "M3 P5 M7 m9 M13"},
	{"maj7_addFlat9_addFlat13", "maj7(add♭9)(add♭13)", "M3 P5 M7 m9 m13"},
	{"min_flat13_flat9", "m(♭13)(♭9)", "m3 P5 m7 m9 P11 m13"},
	{"min11_flat13", "m11(♭13)", "m3 P5 m7 M9 P11 m13"},
	{"halfDim_flat13", "ø(♭13)", "m3 d5 m7 M9 P11 m13"},
	{"dom13_flat5", "13(♭5)", "M3 d5 m7 M9 P11 M13"},
	{"dom13_sharp5", "13(♯5)", "M3 A5 m7 M9 P11 M13"},
	{"maj13_flat5", "maj13(♭5)", "M3 d5 M7 M9 P11 M13"},
	{"maj13_sharp5", "maj13(♯5)", "M3 A5 M7 M9 P11 M13"},
	{"dom13_flat9_sharp11", "13(♭9)(♯11)", "M3 P5 m7 m9 A11 M13"},
	{"dom13_sharp9_sharp11", "13(♯9)(♯11)", "M3 P5 m7 A9 A11 M13"},
	{"maj13_add11", "maj13(add11)", "M3 P5 M7 M9 P11 M13"},
	{"dom13_add11", "13(add11)", "M3 P5 m7 M9 P11 M13"},
	{"min13_add11", "m13(add11)", "m3 P5 m7 M9 P11 M13"},
}
