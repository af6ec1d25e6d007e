package wait

import (
	"fmt"
	"strings"

	"github.com/tebeka/selenium"
)

// Condition is a selenium.Condition with a human readable description, used
// in timeout messages.
type Condition struct {
	desc  string
	check selenium.Condition
}

// New creates a Condition from a description and a selenium.Condition.
func New(desc string, check selenium.Condition) Condition {
	return Condition{desc: desc, check: check}
}

// Check evaluates the condition once against wd.
func (c Condition) Check(wd selenium.WebDriver) (bool, error) {
	return c.check(wd)
}

func (c Condition) String() string {
	return c.desc
}

// ElementToBeClickable holds when the element located by (by, value) is
// displayed and enabled. A stale element counts as not clickable yet.
func ElementToBeClickable(by, value string) Condition {
	return New(fmt.Sprintf("element to be clickable: %s=%s", by, value), func(wd selenium.WebDriver) (bool, error) {
		elem, err := wd.FindElement(by, value)
		if err != nil {
			return false, err
		}
		displayed, err := elem.IsDisplayed()
		if err != nil {
			return staleAsFalse(err)
		}
		if !displayed {
			return false, nil
		}
		enabled, err := elem.IsEnabled()
		if err != nil {
			return staleAsFalse(err)
		}
		return enabled, nil
	})
}

// TextToBe holds when the element located by (by, value) has exactly the
// given visible text.
func TextToBe(by, value, text string) Condition {
	return New(fmt.Sprintf("text (%q) to be present in element found by %s=%s", text, by, value), func(wd selenium.WebDriver) (bool, error) {
		elem, err := wd.FindElement(by, value)
		if err != nil {
			return false, err
		}
		actual, err := elem.Text()
		if err != nil {
			return staleAsFalse(err)
		}
		return actual == text, nil
	})
}

// VisibilityOf holds when an already located element is displayed.
func VisibilityOf(elem selenium.WebElement) Condition {
	return New("visibility of element", func(selenium.WebDriver) (bool, error) {
		displayed, err := elem.IsDisplayed()
		if err != nil {
			return staleAsFalse(err)
		}
		return displayed, nil
	})
}

// AlertIsPresent holds when a user prompt (alert, confirm, prompt) is open.
func AlertIsPresent() Condition {
	return New("alert to be present", func(wd selenium.WebDriver) (bool, error) {
		if _, err := wd.AlertText(); err != nil {
			if IsKind(err, KindNoSuchAlert) {
				return false, nil
			}
			return false, err
		}
		return true, nil
	})
}

// And holds when every condition holds. Evaluation stops at the first
// condition that does not hold or fails.
func And(conds ...Condition) Condition {
	descs := make([]string, len(conds))
	for i, c := range conds {
		descs[i] = c.String()
	}
	return New(fmt.Sprintf("all of the conditions to be valid: %s", strings.Join(descs, " && ")), func(wd selenium.WebDriver) (bool, error) {
		for _, c := range conds {
			ok, err := c.Check(wd)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	})
}

// Not negates cond. Errors from cond are passed through unchanged.
func Not(cond Condition) Condition {
	return New(fmt.Sprintf("condition to not be valid: %s", cond), func(wd selenium.WebDriver) (bool, error) {
		ok, err := cond.Check(wd)
		if err != nil {
			return false, err
		}
		return !ok, nil
	})
}

func staleAsFalse(err error) (bool, error) {
	if IsKind(err, KindStaleElementReference) {
		return false, nil
	}
	return false, err
}
