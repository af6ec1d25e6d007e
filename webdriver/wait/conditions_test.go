//go:build small

package wait_test

import (
	"errors"
	"testing"

	"github.com/aqacourses/selenium-waits/webdriver/wait"
	"github.com/aqacourses/selenium-waits/webdriver/webdrivertest"
	"github.com/stretchr/testify/assert"
	"github.com/tebeka/selenium"
)

const linkXPath = "//ul[@id='main-nav']//span[.='PYTHON']/.."

func TestElementToBeClickable(t *testing.T) {
	wd := webdrivertest.NewFakeDriver()
	cond := wait.ElementToBeClickable(selenium.ByXPATH, linkXPath)

	ok, err := cond.Check(wd)
	assert.False(t, ok)
	assert.True(t, wait.IsKind(err, wait.KindNoSuchElement))

	link := webdrivertest.NewFakeElement("PYTHON")
	link.SetDisplayed(false)
	wd.AddElement(selenium.ByXPATH, linkXPath, link)
	ok, err = cond.Check(wd)
	assert.Nil(t, err)
	assert.False(t, ok)

	link.SetDisplayed(true)
	link.SetEnabled(false)
	ok, err = cond.Check(wd)
	assert.Nil(t, err)
	assert.False(t, ok)

	link.SetEnabled(true)
	ok, err = cond.Check(wd)
	assert.Nil(t, err)
	assert.True(t, ok)

	link.SetError(webdrivertest.NewError(wait.KindStaleElementReference, "detached"))
	ok, err = cond.Check(wd)
	assert.Nil(t, err)
	assert.False(t, ok)

	assert.Contains(t, cond.String(), "element to be clickable")
	assert.Contains(t, cond.String(), linkXPath)
}

func TestTextToBe(t *testing.T) {
	wd := webdrivertest.NewFakeDriver()
	link := webdrivertest.NewFakeElement("Python")
	wd.AddElement(selenium.ByXPATH, linkXPath, link)
	cond := wait.TextToBe(selenium.ByXPATH, linkXPath, "PYTHON")

	ok, err := cond.Check(wd)
	assert.Nil(t, err)
	assert.False(t, ok)

	link.SetText("PYTHON")
	ok, err = cond.Check(wd)
	assert.Nil(t, err)
	assert.True(t, ok)

	link.SetError(errors.New("connection refused"))
	_, err = cond.Check(wd)
	assert.EqualError(t, err, "connection refused")
}

func TestVisibilityOf(t *testing.T) {
	link := webdrivertest.NewFakeElement("PYTHON")
	cond := wait.VisibilityOf(link)

	ok, err := cond.Check(nil)
	assert.Nil(t, err)
	assert.True(t, ok)

	link.SetDisplayed(false)
	ok, _ = cond.Check(nil)
	assert.False(t, ok)
}

func TestAlertIsPresent(t *testing.T) {
	wd := webdrivertest.NewFakeDriver()
	ok, err := wait.AlertIsPresent().Check(wd)
	assert.Nil(t, err)
	assert.False(t, ok)

	wd.OpenAlert("Are you sure?")
	ok, err = wait.AlertIsPresent().Check(wd)
	assert.Nil(t, err)
	assert.True(t, ok)
}

func TestNot(t *testing.T) {
	wd := webdrivertest.NewFakeDriver()
	noAlert := wait.Not(wait.AlertIsPresent())

	ok, err := noAlert.Check(wd)
	assert.Nil(t, err)
	assert.True(t, ok)

	wd.OpenAlert("hello")
	ok, err = noAlert.Check(wd)
	assert.Nil(t, err)
	assert.False(t, ok)

	failing := wait.New("broken", func(selenium.WebDriver) (bool, error) {
		return false, errors.New("boom")
	})
	ok, err = wait.Not(failing).Check(wd)
	assert.False(t, ok)
	assert.EqualError(t, err, "boom")
	assert.Equal(t, "condition to not be valid: broken", wait.Not(failing).String())
}

func TestAnd(t *testing.T) {
	var evaluated []string
	cond := func(name string, result bool, err error) wait.Condition {
		return wait.New(name, func(selenium.WebDriver) (bool, error) {
			evaluated = append(evaluated, name)
			return result, err
		})
	}

	ok, err := wait.And(cond("a", true, nil), cond("b", true, nil)).Check(nil)
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, evaluated)

	evaluated = nil
	ok, err = wait.And(cond("a", false, nil), cond("b", true, nil)).Check(nil)
	assert.Nil(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"a"}, evaluated)

	evaluated = nil
	boom := errors.New("boom")
	ok, err = wait.And(cond("a", true, nil), cond("b", true, boom), cond("c", true, nil)).Check(nil)
	assert.Equal(t, boom, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b"}, evaluated)

	assert.Equal(t, "all of the conditions to be valid: a && b",
		wait.And(cond("a", true, nil), cond("b", true, nil)).String())
}

func TestErrorKind(t *testing.T) {
	err := webdrivertest.NewError(wait.KindTimeout, "page load")
	assert.Equal(t, wait.KindTimeout, wait.ErrorKind(err))
	assert.Equal(t, wait.KindTimeout, wait.ErrorKind(errors.Join(errors.New("wrapped"), err)))
	assert.Equal(t, "", wait.ErrorKind(errors.New("plain")))
	assert.Equal(t, "", wait.ErrorKind(nil))
	assert.True(t, wait.IsKind(err, wait.KindNoSuchElement, wait.KindTimeout))
	assert.False(t, wait.IsKind(err, wait.KindNoSuchElement))
}

func TestIsKnownKind(t *testing.T) {
	assert.True(t, wait.IsKnownKind(wait.KindTimeout))
	assert.True(t, wait.IsKnownKind(wait.KindElementClickIntercepted))
	assert.False(t, wait.IsKnownKind("timout"))
	assert.False(t, wait.IsKnownKind(""))
}
