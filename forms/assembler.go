package forms

// Assemble produces the ordered rows a stage should render given the current
// answer state. It is pure: the same catalog and state always yield the same
// sequence, and the catalog is never mutated. Answers whose questions are no
// longer visible stay in the state untouched; they are simply not returned.
func (c *Catalog) Assemble(stage Stage, state *State) []Row {
	switch stage {
	case StageBasicDetails:
		return c.assembleBasicDetails(state)
	case StageExistingPlans:
		return filterConditional(c.existingPlans, state)
	case StageRecommendedPlan:
		return filterConditional(c.recommendedPlan, state)
	case StageResults:
		return filterConditional(c.results, state)
	default:
		return nil
	}
}

// assembleBasicDetails applies the splice rules that make Basic Details the
// most conditional stage:
//
//   - the crystallised-funds question sits immediately before attitude to
//     risk, regardless of any other answer;
//   - the sophisticated-investor question follows attitude only for the two
//     highest risk bands;
//   - the ESS question always appears, with the replacing-ESS question
//     directly after it when the answer is Yes, and the ESS-only comparison
//     question directly after that when replacing is answered No;
//   - the base questions that follow attitude close the stage.
func (c *Catalog) assembleBasicDetails(state *State) []Row {
	rows := make([]Row, 0, len(c.basicBase)+5)

	attitudeIdx := -1
	for i, row := range c.basicBase {
		if row.Question.Key == KeyAttitude {
			attitudeIdx = i
			break
		}
	}
	if attitudeIdx < 0 {
		// Catalog without an attitude question degrades to its base sequence.
		return append(rows, c.basicBase...)
	}

	rows = append(rows, c.basicBase[:attitudeIdx]...)
	rows = append(rows, c.crystallised)
	rows = append(rows, c.basicBase[attitudeIdx])

	if attitude := state.Get(KeyAttitude); attitude == AnswerUpperMedium || attitude == AnswerHigh {
		rows = append(rows, c.sophisticated)
	}

	rows = append(rows, c.essAccess)
	if state.Get(KeyESS) == AnswerYes {
		rows = append(rows, c.replaceESS)
		if state.Get(KeyReplaceESS) == AnswerNo {
			rows = append(rows, c.essOnly)
		}
	}

	return append(rows, c.basicBase[attitudeIdx+1:]...)
}

// filterConditional keeps the rows whose condition (if any) is satisfied by
// the current state, preserving catalog order.
func filterConditional(base []Row, state *State) []Row {
	rows := make([]Row, 0, len(base))
	for _, row := range base {
		if cond := row.Question.Condition; cond != nil && state.Get(cond.DependsOn) != cond.RequiredValue {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
