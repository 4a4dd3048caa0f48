/*
Package solver finds every way of reaching a target number from a set of numbers,
as in the numbers round of the Countdown game show.

Given a list of strictly positive integers and a target, the solver enumerates all the
expressions that combine some of these numbers (each of them at most once) with
additions, subtractions, multiplications and divisions, and that evaluate to the target.
Every intermediate result must be a strictly positive integer: "3 - 5" and "7 / 2" are
never considered.

Solving a problem

To solve a problem, one simply creates a solver with the numbers and the target,
then runs it:

    s := solver.New([]int{25, 50, 75, 100, 8, 9}, 952)
    s.Run()
    fmt.Printf("%d evaluated, %d solutions\n", s.Stats.NbEvaluated, len(s.Solutions()))
    for _, sol := range s.Solutions() {
        fmt.Printf("%s = %d\n", sol, sol.Value())
    }

Solutions are Terms, i.e expression trees. Two solutions are considered the same
only if they are structurally equal: same operators, applied to the same operands,
in the same order. Since the solver always puts the biggest operand on the left,
"(4 + 3)" will be found, but never "(3 + 4)".

The search is exhaustive and can take a while. RunContext stops it when a context is done,
and Enumerate sends solutions on a channel as soon as they are found:

    sols := make(chan *solver.Term)
    go s.Enumerate(sols, nil)
    for sol := range sols {
        fmt.Println(sol)
    }

Checking an answer

An expression can be parsed from its textual representation, then checked against
a problem:

    t, err := solver.ParseString("(25 + 9) * ((100 + 75) * 8 / 50)")
    if err != nil {
        return err
    }
    if err := solver.Check(t, []int{25, 50, 75, 100, 8, 9}, 952); err != nil {
        return err
    }
*/
package solver
